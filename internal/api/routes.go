package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Get("/r/:slug", handler.ShowSharedReportPage)

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/workouts", handler.AuthRequired, handler.ShowWorkoutsPage)
	app.Get("/nutrition", handler.AuthRequired, handler.ShowNutritionPage)
	app.Get("/academics", handler.AuthRequired, handler.ShowAcademicsPage)
	app.Get("/habits", handler.AuthRequired, handler.ShowHabitsPage)
	app.Get("/report", handler.AuthRequired, handler.ShowReportPage)
	app.Get("/settings", handler.AuthRequired, handler.ShowSettingsPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkouts)
	workouts.Post("", handler.CreateWorkout)
	workouts.Put("/:id", handler.UpdateWorkout)
	workouts.Delete("/:id", handler.DeleteWorkout)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.GetExercises)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("", handler.GetMeals)
	meals.Post("", handler.CreateMeal)
	meals.Put("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	foods := api.Group("/foods", handler.AuthRequired)
	foods.Get("", handler.GetFoods)
	foods.Post("", handler.CreateFood)

	study := api.Group("/study-sessions", handler.AuthRequired)
	study.Get("", handler.GetStudySessions)
	study.Post("", handler.CreateStudySession)
	study.Put("/:id", handler.UpdateStudySession)
	study.Delete("/:id", handler.DeleteStudySession)

	internships := api.Group("/internship-logs", handler.AuthRequired)
	internships.Get("", handler.GetInternshipLogs)
	internships.Post("", handler.CreateInternshipLog)
	internships.Delete("/:id", handler.DeleteInternshipLog)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.GetHabits)
	habits.Post("", handler.CreateHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)
	habits.Post("/:id/recompute", handler.RecomputeHabitStreak)
	habits.Patch("/:id/active", handler.SetHabitActive)
	habits.Delete("/:id", handler.DeleteHabit)

	metrics := api.Group("/metrics", handler.AuthRequired)
	metrics.Get("", handler.GetMetrics)
	metrics.Post("", handler.UpsertMetrics)

	journal := api.Group("/journal", handler.AuthRequired)
	journal.Get("", handler.GetJournal)
	journal.Post("", handler.SaveJournal)

	quotes := api.Group("/quotes", handler.AuthRequired)
	quotes.Get("/today", handler.GetQuoteOfDay)
	quotes.Post("", handler.CreateQuote)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("/day", handler.GetDaySnapshot)
	reports.Post("/generate", handler.GenerateReport)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/weekly", handler.GetWeeklyStats)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
