package api

import (
	"github.com/harsh-kumbhar/lifelog/internal/db"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	repositories := handler.repositories

	if handler.authService == nil {
		handler.authService = services.NewAuthService(repositories.Users)
	}
	if handler.catalogService == nil {
		handler.catalogService = services.NewCatalogService(repositories.Exercises, repositories.Foods)
	}
	if handler.workoutService == nil {
		handler.workoutService = services.NewWorkoutService(repositories.Workouts, handler.catalogService)
	}
	if handler.nutritionService == nil {
		handler.nutritionService = services.NewNutritionService(repositories.Meals, handler.catalogService)
	}
	if handler.studyService == nil {
		handler.studyService = services.NewStudyService(repositories.Studies, repositories.Internships)
	}
	if handler.habitService == nil {
		handler.habitService = services.NewHabitService(repositories.Habits)
	}
	if handler.metricsService == nil {
		handler.metricsService = services.NewMetricsService(repositories.Metrics)
	}
	if handler.journalService == nil {
		handler.journalService = services.NewJournalService(repositories.Journal)
	}
	if handler.quoteService == nil {
		handler.quoteService = services.NewQuoteService(repositories.Quotes)
	}
	if handler.rollupService == nil {
		handler.rollupService = services.NewRollupService(repositories.Metrics, repositories.Workouts, repositories.Studies, repositories.Internships, repositories.Habits)
	}
	if handler.snapshotService == nil {
		handler.snapshotService = services.NewSnapshotService(
			handler.journalService,
			handler.metricsService,
			handler.workoutService,
			handler.nutritionService,
			handler.studyService,
			handler.habitService,
			handler.quoteService,
			repositories.Reports,
		)
	}
}
