package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Exercises   *ExerciseRepository
	Foods       *FoodRepository
	Workouts    *WorkoutRepository
	Meals       *MealRepository
	Studies     *StudyRepository
	Internships *InternshipRepository
	Habits      *HabitRepository
	Metrics     *MetricsRepository
	Journal     *JournalRepository
	Quotes      *QuoteRepository
	Reports     *ReportRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Exercises:   NewExerciseRepository(database),
		Foods:       NewFoodRepository(database),
		Workouts:    NewWorkoutRepository(database),
		Meals:       NewMealRepository(database),
		Studies:     NewStudyRepository(database),
		Internships: NewInternshipRepository(database),
		Habits:      NewHabitRepository(database),
		Metrics:     NewMetricsRepository(database),
		Journal:     NewJournalRepository(database),
		Quotes:      NewQuoteRepository(database),
		Reports:     NewReportRepository(database),
	}
}
