package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) GetQuoteOfDay(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := handler.parseDateQuery(c, location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	quote, found, err := handler.quoteService.QuoteOfTheDay(day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load quote")
	}
	if !found {
		return c.JSON(fiber.Map{"quote": nil})
	}
	return c.JSON(fiber.Map{"quote": quote})
}

func (handler *Handler) CreateQuote(c *fiber.Ctx) error {
	if _, handled, err := currentUserOrUnauthorized(c); err != nil || handled {
		return err
	}

	payload := quotePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	quote, err := handler.quoteService.AddQuote(payload.Text, payload.Author)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuoteText) {
			return apiError(c, fiber.StatusBadRequest, "quote text is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save quote")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"quote": quote})
	}
	return redirectToPath(c, "/dashboard?date="+time.Now().In(handler.location).Format(dateInputLayout))
}
