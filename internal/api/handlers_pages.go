package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowWorkoutsPage(c *fiber.Ctx) error {
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

	sessions, err := handler.workoutService.FetchSessionsForDate(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load workouts")
	}
	exercises, err := handler.catalogService.ListExercises()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load exercises")
	}

	return handler.render(c, "workouts", fiber.Map{
		"Title":     "Workouts",
		"Date":      day.In(location).Format(dateInputLayout),
		"Sessions":  sessions,
		"Exercises": exercises,
	})
}

func (handler *Handler) ShowNutritionPage(c *fiber.Ctx) error {
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

	meals, err := handler.nutritionService.FetchMealsForDate(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load meals")
	}
	protein, calories, err := handler.nutritionService.DailyTotals(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to total meals")
	}
	foods, err := handler.catalogService.ListFoods()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load foods")
	}

	return handler.render(c, "nutrition", fiber.Map{
		"Title":         "Nutrition",
		"Date":          day.In(location).Format(dateInputLayout),
		"Meals":         meals,
		"ProteinTotal":  protein,
		"CalorieTotal":  calories,
		"Foods":         foods,
	})
}

func (handler *Handler) ShowAcademicsPage(c *fiber.Ctx) error {
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

	sessions, err := handler.studyService.FetchSessionsForDate(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load study sessions")
	}
	internshipLogs, err := handler.studyService.FetchInternshipLogsForDate(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load internship logs")
	}
	studyHours, internshipHours, err := handler.studyService.DailyHours(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to total hours")
	}

	return handler.render(c, "academics", fiber.Map{
		"Title":           "Academics",
		"Date":            day.In(location).Format(dateInputLayout),
		"Sessions":        sessions,
		"InternshipLogs":  internshipLogs,
		"StudyHours":      studyHours,
		"InternshipHours": internshipHours,
	})
}

func (handler *Handler) ShowHabitsPage(c *fiber.Ctx) error {
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

	habits, err := handler.buildHabitViews(user.ID, day, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load habits")
	}

	return handler.render(c, "habits", fiber.Map{
		"Title":  "Habits",
		"Date":   day.In(location).Format(dateInputLayout),
		"Habits": habits,
	})
}

func (handler *Handler) ShowReportPage(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusInternalServerError).SendString("failed to build report")
	}
	report, err := handler.snapshotService.SaveReport(user.ID, day, snapshot, location)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("failed to save report")
	}

	return handler.render(c, "report", fiber.Map{
		"Title":     "Daily report",
		"Snapshot":  snapshot,
		"ShareSlug": report.ShareSlug,
		"Shared":    false,
	})
}

// ShowSharedReportPage renders a persisted report by its share slug without
// requiring a session.
func (handler *Handler) ShowSharedReportPage(c *fiber.Ctx) error {
	handler.ensureDependencies()
	_, snapshot, err := handler.snapshotService.FetchSharedReport(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("report not found")
	}

	return handler.render(c, "report", fiber.Map{
		"Title":    "Daily report",
		"Snapshot": snapshot,
		"Shared":   true,
	})
}

func (handler *Handler) ShowSettingsPage(c *fiber.Ctx) error {
	user, handled, err := handler.currentUserOrRedirectToLogin(c)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "settings", fiber.Map{
		"Title":           "Settings",
		"User":            user,
		"SettingsError":   flash.SettingsError,
		"SettingsSuccess": flash.SettingsSuccess,
	})
}
