package api

import (
	"github.com/gofiber/fiber/v2"
)

// GetDaySnapshot assembles the full cross-module view of a day as JSON.
func (handler *Handler) GetDaySnapshot(c *fiber.Ctx) error {
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

	snapshot, err := handler.snapshotService.BuildSnapshot(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build snapshot")
	}
	return c.JSON(fiber.Map{"snapshot": snapshot})
}

// GenerateReport persists the day's snapshot and returns the share slug.
// Regenerating overwrites the snapshot but keeps the slug stable.
func (handler *Handler) GenerateReport(c *fiber.Ctx) error {
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

	snapshot, err := handler.snapshotService.BuildSnapshot(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build snapshot")
	}
	report, err := handler.snapshotService.SaveReport(user.ID, day, snapshot, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save report")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"report_date": report.Date.In(location).Format(dateInputLayout),
			"share_slug":  report.ShareSlug,
			"share_path":  "/r/" + report.ShareSlug,
		})
	}
	return redirectToPath(c, "/report?date="+day.In(location).Format(dateInputLayout))
}

func (handler *Handler) GetWeeklyStats(c *fiber.Ctx) error {
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

	rollup, err := handler.rollupService.BuildWeeklyRollup(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build weekly stats")
	}
	return c.JSON(fiber.Map{"rollup": rollup})
}
