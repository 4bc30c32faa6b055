package services

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

// WeeklyRollup aggregates the trailing seven-day window ending on (and
// including) the selected date. Mean-style fields are nil when the window
// has no matching rows; count-style fields default to zero.
type WeeklyRollup struct {
	From                 time.Time
	To                   time.Time
	AvgWaterML           *float64
	AvgSleepHours        *float64
	AvgScreenTimeMinutes *float64
	WorkoutCount         int
	WorkoutVolumeKg      float64
	StudyHoursTotal      float64
	InternshipHoursTotal float64
	HabitCompletions     int
	DaysWithMetrics      int
}

// HabitLogSource is the slice of habit storage the rollup needs: completion
// rows across all of a user's habits for a date window.
type HabitLogSource interface {
	ListLogsByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error)
}

type RollupService struct {
	metrics     MetricsRepository
	workouts    WorkoutRepository
	studies     StudyRepository
	internships InternshipRepository
	habitLogs   HabitLogSource
}

func NewRollupService(metrics MetricsRepository, workouts WorkoutRepository, studies StudyRepository, internships InternshipRepository, habitLogs HabitLogSource) *RollupService {
	return &RollupService{
		metrics:     metrics,
		workouts:    workouts,
		studies:     studies,
		internships: internships,
		habitLogs:   habitLogs,
	}
}

// BuildWeeklyRollup recomputes the window from source rows on every call;
// there is no cached weekly state to invalidate.
func (service *RollupService) BuildWeeklyRollup(userID uint, endDay time.Time, location *time.Location) (WeeklyRollup, error) {
	windowStart, windowEnd := WeekRange(endDay, location)
	rollup := WeeklyRollup{
		From: windowStart,
		To:   DateAtLocation(endDay, location),
	}

	metricsRows, err := service.metrics.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeeklyRollup{}, err
	}
	waterSamples := make([]float64, 0, len(metricsRows))
	sleepSamples := make([]float64, 0, len(metricsRows))
	screenSamples := make([]float64, 0, len(metricsRows))
	for _, row := range metricsRows {
		waterSamples = append(waterSamples, float64(row.WaterML))
		screenSamples = append(screenSamples, float64(row.ScreenTimeMinutes))
		if row.SleepHours != nil {
			sleepSamples = append(sleepSamples, *row.SleepHours)
		}
	}
	rollup.DaysWithMetrics = len(metricsRows)
	rollup.AvgWaterML = meanOf(waterSamples)
	rollup.AvgSleepHours = meanOf(sleepSamples)
	rollup.AvgScreenTimeMinutes = meanOf(screenSamples)

	workoutRows, err := service.workouts.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeeklyRollup{}, err
	}
	rollup.WorkoutCount = len(workoutRows)
	if len(workoutRows) > 0 {
		sessionIDs := make([]uint, 0, len(workoutRows))
		for _, session := range workoutRows {
			sessionIDs = append(sessionIDs, session.ID)
		}
		items, err := service.workouts.ListItemsForSessions(sessionIDs)
		if err != nil {
			return WeeklyRollup{}, err
		}
		rollup.WorkoutVolumeKg = WorkoutVolume(items)
	}

	studyRows, err := service.studies.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeeklyRollup{}, err
	}
	rollup.StudyHoursTotal = StudyHoursTotal(studyRows)

	internshipRows, err := service.internships.ListByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeeklyRollup{}, err
	}
	rollup.InternshipHoursTotal = InternshipHoursTotal(internshipRows)

	completionRows, err := service.habitLogs.ListLogsByUserRange(userID, windowStart, windowEnd)
	if err != nil {
		return WeeklyRollup{}, err
	}
	rollup.HabitCompletions = len(completionRows)

	return rollup, nil
}
