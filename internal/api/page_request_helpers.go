package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/models"
)

func (handler *Handler) redirectAuthenticatedUserIfPresent(c *fiber.Ctx) (bool, error) {
	if _, err := handler.authenticateRequest(c); err == nil {
		if redirectErr := c.Redirect("/dashboard", fiber.StatusSeeOther); redirectErr != nil {
			return false, redirectErr
		}
		return true, nil
	}
	return false, nil
}

func (handler *Handler) currentUserOrRedirectToLogin(c *fiber.Ctx) (*models.User, bool, error) {
	user, ok := currentUser(c)
	if !ok {
		if redirectErr := c.Redirect("/login", fiber.StatusSeeOther); redirectErr != nil {
			return nil, false, redirectErr
		}
		return nil, true, nil
	}
	return user, false, nil
}

func currentUserOrUnauthorized(c *fiber.Ctx) (*models.User, bool, error) {
	user, ok := currentUser(c)
	if !ok {
		if sendErr := c.Status(fiber.StatusUnauthorized).SendString("unauthorized"); sendErr != nil {
			return nil, false, sendErr
		}
		return nil, true, nil
	}
	return user, false, nil
}

// userLocation resolves the viewer's calendar-day boundary. A user's stored
// timezone wins over the server default; a bad value falls back silently.
func (handler *Handler) userLocation(user *models.User) *time.Location {
	if user == nil || user.Timezone == "" {
		return handler.location
	}
	location, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return handler.location
	}
	return location
}
