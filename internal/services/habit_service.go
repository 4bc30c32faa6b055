package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrHabitNotFound      = errors.New("habit not found")
	ErrInvalidHabitName   = errors.New("invalid habit name")
	ErrHabitCreateFailed  = errors.New("create habit failed")
	ErrHabitLogFailed     = errors.New("record habit completion failed")
)

const maxHabitNameLength = 200

type HabitRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	DeleteByIDForUser(habitID uint, userID uint) (bool, error)
	CreateLogIfAbsent(entry *models.HabitLog) (bool, error)
	ListLogsByHabit(habitID uint) ([]models.HabitLog, error)
	ListLogsByHabitDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) ([]models.HabitLog, error)
	UpdateStreakFields(habitID uint, currentStreak int, bestStreak int, lastDoneDate *time.Time) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) CreateHabit(userID uint, name string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxHabitNameLength {
		return models.Habit{}, ErrInvalidHabitName
	}
	habit := models.Habit{
		UserID: userID,
		Name:   name,
		Active: true,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, ErrHabitCreateFailed
	}
	return habit, nil
}

func (service *HabitService) ListHabits(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) FetchHabit(userID uint, habitID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

func (service *HabitService) DeleteHabit(userID uint, habitID uint) error {
	deleted, err := service.habits.DeleteByIDForUser(habitID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHabitNotFound
	}
	return nil
}

func (service *HabitService) SetActive(userID uint, habitID uint, active bool) (models.Habit, error) {
	habit, err := service.FetchHabit(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	habit.Active = active
	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// RecordCompletion marks a habit done for a calendar day. The completion-log
// insert is the primary write and fails loudly; the streak counters are a
// cache updated afterwards as a secondary write whose failure is logged and
// swallowed, leaving the counters unchanged.
//
// Marking the same day twice is a no-op: the unique (habit, date) index
// resolves concurrent double-submits and the loser skips the streak update.
func (service *HabitService) RecordCompletion(userID uint, habitID uint, day time.Time, notes string, location *time.Location) (models.Habit, error) {
	habit, err := service.FetchHabit(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}

	completionDate := DateAtLocation(day, location)
	entry := models.HabitLog{
		HabitID: habit.ID,
		Date:    completionDate,
		Notes:   notes,
	}
	created, err := service.habits.CreateLogIfAbsent(&entry)
	if err != nil {
		return models.Habit{}, ErrHabitLogFailed
	}
	if !created {
		return habit, nil
	}

	updated, err := service.nextStreakState(habit, completionDate, location)
	if err != nil {
		log.Printf("event=streak_update_failed habit_id=%d date=%s err=%v", habit.ID, completionDate.Format("2006-01-02"), err)
		return habit, nil
	}
	if err := service.habits.UpdateStreakFields(habit.ID, updated.CurrentStreak, updated.BestStreak, updated.LastDoneDate); err != nil {
		log.Printf("event=streak_update_failed habit_id=%d date=%s err=%v", habit.ID, completionDate.Format("2006-01-02"), err)
		return habit, nil
	}
	return updated, nil
}

// nextStreakState applies the incremental streak rule for an in-order
// completion. A backdated completion earlier than the last-done date would
// corrupt the incremental counters, so that path recomputes from the full
// completion history instead.
func (service *HabitService) nextStreakState(habit models.Habit, completionDate time.Time, location *time.Location) (models.Habit, error) {
	if habit.LastDoneDate != nil && completionDate.Before(DateAtLocation(*habit.LastDoneDate, location)) {
		return service.recomputeFromHistory(habit, location)
	}

	switch {
	case habit.LastDoneDate == nil:
		habit.CurrentStreak = 1
	case SameCalendarDay(*habit.LastDoneDate, completionDate, location):
		return habit, nil
	case DaysBetween(*habit.LastDoneDate, completionDate, location) == 1:
		habit.CurrentStreak++
	default:
		habit.CurrentStreak = 1
	}

	if habit.CurrentStreak > habit.BestStreak {
		habit.BestStreak = habit.CurrentStreak
	}
	habit.LastDoneDate = &completionDate
	return habit, nil
}

// RecomputeStreak rebuilds the cached streak counters from the completion
// log. It is the repair path for any drift between the cache and its source
// rows, and the authoritative rule for backfilled completions.
func (service *HabitService) RecomputeStreak(userID uint, habitID uint, location *time.Location) (models.Habit, error) {
	habit, err := service.FetchHabit(userID, habitID)
	if err != nil {
		return models.Habit{}, err
	}
	habit, err = service.recomputeFromHistory(habit, location)
	if err != nil {
		return models.Habit{}, err
	}
	if err := service.habits.UpdateStreakFields(habit.ID, habit.CurrentStreak, habit.BestStreak, habit.LastDoneDate); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (service *HabitService) recomputeFromHistory(habit models.Habit, location *time.Location) (models.Habit, error) {
	logs, err := service.habits.ListLogsByHabit(habit.ID)
	if err != nil {
		return models.Habit{}, err
	}

	habit.CurrentStreak, habit.BestStreak, habit.LastDoneDate = StreakFromHistory(logs, location)
	return habit, nil
}

// StreakFromHistory derives (current, best, lastDone) from completion rows
// sorted by ascending date. Current is the length of the run ending at the
// most recent completion; best is the longest run anywhere.
func StreakFromHistory(logs []models.HabitLog, location *time.Location) (int, int, *time.Time) {
	if len(logs) == 0 {
		return 0, 0, nil
	}

	best := 1
	run := 1
	for index := 1; index < len(logs); index++ {
		gap := DaysBetween(logs[index-1].Date, logs[index].Date, location)
		if gap == 0 {
			continue
		}
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	lastDone := DateAtLocation(logs[len(logs)-1].Date, location)
	return run, best, &lastDone
}

// CompletedOn reports whether the habit has a completion row for the day.
func (service *HabitService) CompletedOn(habitID uint, day time.Time, location *time.Location) (bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	logs, err := service.habits.ListLogsByHabitDayRange(habitID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	return len(logs) > 0, nil
}
