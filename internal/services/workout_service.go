package services

import (
	"errors"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrWorkoutNotFound     = errors.New("workout session not found")
	ErrWorkoutSaveFailed   = errors.New("save workout session failed")
	ErrWorkoutDeleteFailed = errors.New("delete workout session failed")
)

type WorkoutRepository interface {
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WorkoutSession, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.WorkoutSession, error)
	FindByIDForUser(sessionID uint, userID uint) (models.WorkoutSession, bool, error)
	ListItemsForSessions(sessionIDs []uint) ([]models.WorkoutExercise, error)
	SaveWithItems(session *models.WorkoutSession, items []models.WorkoutExercise) error
	DeleteByIDForUser(sessionID uint, userID uint) (bool, error)
}

type WorkoutItemInput struct {
	ExerciseName  string
	Sets          int
	TargetReps    string
	RepsPerformed *int
	WeightKg      *float64
	RestSeconds   *int
	Notes         string
}

type WorkoutSessionInput struct {
	Date      time.Time
	StartTime string
	EndTime   string
	Location  string
	Notes     string
	Items     []WorkoutItemInput
}

type WorkoutService struct {
	workouts WorkoutRepository
	catalog  *CatalogService
}

func NewWorkoutService(workouts WorkoutRepository, catalog *CatalogService) *WorkoutService {
	return &WorkoutService{
		workouts: workouts,
		catalog:  catalog,
	}
}

// SaveSession creates or updates a workout session together with its line
// items. Duration is rederived from the time-of-day fields on every save;
// exercises are resolved by name with auto-create.
func (service *WorkoutService) SaveSession(userID uint, sessionID uint, payload WorkoutSessionInput, location *time.Location) (models.WorkoutSession, error) {
	session := models.WorkoutSession{UserID: userID}
	if sessionID != 0 {
		existing, found, err := service.workouts.FindByIDForUser(sessionID, userID)
		if err != nil {
			return models.WorkoutSession{}, err
		}
		if !found {
			return models.WorkoutSession{}, ErrWorkoutNotFound
		}
		session = existing
	}

	session.Date = DateAtLocation(payload.Date, location)
	session.StartTime = payload.StartTime
	session.EndTime = payload.EndTime
	session.DurationMinutes = SessionDurationMinutes(payload.StartTime, payload.EndTime)
	session.Location = payload.Location
	session.Notes = payload.Notes

	items := make([]models.WorkoutExercise, 0, len(payload.Items))
	for _, itemInput := range payload.Items {
		exercise, err := service.catalog.ResolveExercise(itemInput.ExerciseName)
		if err != nil {
			return models.WorkoutSession{}, err
		}
		sets := itemInput.Sets
		if sets < 1 {
			sets = 1
		}
		items = append(items, models.WorkoutExercise{
			ExerciseID:    exercise.ID,
			Exercise:      exercise,
			Sets:          sets,
			TargetReps:    itemInput.TargetReps,
			RepsPerformed: itemInput.RepsPerformed,
			WeightKg:      itemInput.WeightKg,
			RestSeconds:   itemInput.RestSeconds,
			Notes:         itemInput.Notes,
		})
	}

	if err := service.workouts.SaveWithItems(&session, items); err != nil {
		return models.WorkoutSession{}, ErrWorkoutSaveFailed
	}
	return session, nil
}

func (service *WorkoutService) FetchSession(userID uint, sessionID uint) (models.WorkoutSession, error) {
	session, found, err := service.workouts.FindByIDForUser(sessionID, userID)
	if err != nil {
		return models.WorkoutSession{}, err
	}
	if !found {
		return models.WorkoutSession{}, ErrWorkoutNotFound
	}
	return session, nil
}

func (service *WorkoutService) FetchSessionsForDate(userID uint, day time.Time, location *time.Location) ([]models.WorkoutSession, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.workouts.ListByUserDayRange(userID, dayStart, dayEnd)
}

func (service *WorkoutService) DeleteSession(userID uint, sessionID uint) error {
	deleted, err := service.workouts.DeleteByIDForUser(sessionID, userID)
	if err != nil {
		return ErrWorkoutDeleteFailed
	}
	if !deleted {
		return ErrWorkoutNotFound
	}
	return nil
}

// SessionVolume exposes the volume rollup for one session.
func (service *WorkoutService) SessionVolume(session models.WorkoutSession) float64 {
	return WorkoutVolume(session.Exercises)
}
