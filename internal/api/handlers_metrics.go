package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) GetMetrics(c *fiber.Ctx) error {
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

	metrics, found, err := handler.metricsService.FetchForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load metrics")
	}
	if !found {
		return c.JSON(fiber.Map{"metrics": nil})
	}
	return c.JSON(fiber.Map{"metrics": metrics})
}

// UpsertMetrics writes the day's scalar metrics. One row per (user, day);
// posting again replaces the values, so omitted optional fields clear.
func (handler *Handler) UpsertMetrics(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := metricsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	metrics, err := handler.metricsService.UpsertForDate(user.ID, day, services.DailyMetricsInput{
		WaterML:           payload.WaterML,
		SleepHours:        payload.SleepHours,
		ScreenTimeMinutes: payload.ScreenTimeMinutes,
		Steps:             payload.Steps,
		Mood:              payload.Mood,
		Notes:             payload.Notes,
	}, location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMetrics) {
			return apiError(c, fiber.StatusBadRequest, "metric values must be non-negative")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save metrics")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"metrics": metrics})
	}
	return redirectToPath(c, "/dashboard?date="+day.In(location).Format(dateInputLayout))
}
