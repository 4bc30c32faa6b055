package api

import "github.com/gofiber/fiber/v2"

// ShowDashboard renders the day view: journal, metrics, the day's logs from
// every domain, habit states, and the trailing-week rollup.
func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user, handled, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := handler.parseDateQuery(c, location)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("invalid date")
	}

	snapshot, err := handler.snapshotService.BuildSnapshot(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build day view")
	}

	rollup, err := handler.rollupService.BuildWeeklyRollup(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build weekly stats")
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":    "Dashboard",
		"Snapshot": snapshot,
		"Rollup":   rollup,
		"Date":     snapshot.Date,
	})
}
