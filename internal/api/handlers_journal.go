package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

// GetJournal returns the day's journal entry, creating an empty one on first
// view so the edit form always has a row to target.
func (handler *Handler) GetJournal(c *fiber.Ctx) error {
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

	entry, err := handler.journalService.GetOrCreateForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load journal")
	}
	return c.JSON(fiber.Map{"entry": entry})
}

func (handler *Handler) SaveJournal(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := journalPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.journalService.SaveForDate(user.ID, day, services.JournalEntryInput{
		MorningNote: payload.MorningNote,
		EveningNote: payload.EveningNote,
		GratefulFor: payload.GratefulFor,
		Highlights:  payload.Highlights,
		Mood:        payload.Mood,
		QuoteID:     payload.QuoteID,
	}, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save journal")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"entry": entry})
	}
	return redirectToPath(c, "/dashboard?date="+day.In(location).Format(dateInputLayout))
}
