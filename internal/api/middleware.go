package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/models"
)

const (
	authCookieName  = "lifelog_auth"
	flashCookieName = "lifelog_flash"
	contextUserKey  = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
