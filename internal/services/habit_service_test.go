package services

import (
	"errors"
	"testing"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

type habitRepositoryStub struct {
	habits          map[uint]models.Habit
	logs            []models.HabitLog
	nextHabitID     uint
	nextLogID       uint
	streakUpdateErr error
	logInsertErr    error
}

func newHabitRepositoryStub() *habitRepositoryStub {
	return &habitRepositoryStub{
		habits:      make(map[uint]models.Habit),
		nextHabitID: 1,
		nextLogID:   1,
	}
}

func (stub *habitRepositoryStub) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for _, habit := range stub.habits {
		if habit.UserID == userID {
			habits = append(habits, habit)
		}
	}
	return habits, nil
}

func (stub *habitRepositoryStub) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit, exists := stub.habits[habitID]
	if !exists || habit.UserID != userID {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (stub *habitRepositoryStub) Create(habit *models.Habit) error {
	habit.ID = stub.nextHabitID
	stub.nextHabitID++
	stub.habits[habit.ID] = *habit
	return nil
}

func (stub *habitRepositoryStub) Save(habit *models.Habit) error {
	stub.habits[habit.ID] = *habit
	return nil
}

func (stub *habitRepositoryStub) DeleteByIDForUser(habitID uint, userID uint) (bool, error) {
	habit, exists := stub.habits[habitID]
	if !exists || habit.UserID != userID {
		return false, nil
	}
	delete(stub.habits, habitID)
	return true, nil
}

func (stub *habitRepositoryStub) CreateLogIfAbsent(entry *models.HabitLog) (bool, error) {
	if stub.logInsertErr != nil {
		return false, stub.logInsertErr
	}
	for _, existing := range stub.logs {
		if existing.HabitID == entry.HabitID && existing.Date.Equal(entry.Date) {
			return false, nil
		}
	}
	entry.ID = stub.nextLogID
	stub.nextLogID++
	stub.logs = append(stub.logs, *entry)
	return true, nil
}

func (stub *habitRepositoryStub) ListLogsByHabit(habitID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for _, entry := range stub.logs {
		if entry.HabitID == habitID {
			logs = append(logs, entry)
		}
	}
	for left := 0; left < len(logs); left++ {
		for right := left + 1; right < len(logs); right++ {
			if logs[right].Date.Before(logs[left].Date) {
				logs[left], logs[right] = logs[right], logs[left]
			}
		}
	}
	return logs, nil
}

func (stub *habitRepositoryStub) ListLogsByHabitDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for _, entry := range stub.logs {
		if entry.HabitID != habitID {
			continue
		}
		if entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

func (stub *habitRepositoryStub) ListLogsByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	for _, entry := range stub.logs {
		habit, exists := stub.habits[entry.HabitID]
		if !exists || habit.UserID != userID {
			continue
		}
		if entry.Date.Before(fromStart) || !entry.Date.Before(toEnd) {
			continue
		}
		logs = append(logs, entry)
	}
	return logs, nil
}

func (stub *habitRepositoryStub) UpdateStreakFields(habitID uint, currentStreak int, bestStreak int, lastDoneDate *time.Time) error {
	if stub.streakUpdateErr != nil {
		return stub.streakUpdateErr
	}
	habit := stub.habits[habitID]
	habit.CurrentStreak = currentStreak
	habit.BestStreak = bestStreak
	habit.LastDoneDate = lastDoneDate
	stub.habits[habitID] = habit
	return nil
}

func day(value string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func newTestHabit(t *testing.T, stub *habitRepositoryStub, service *HabitService) models.Habit {
	t.Helper()
	habit, err := service.CreateHabit(1, "Read 20 pages")
	if err != nil {
		t.Fatalf("CreateHabit failed: %v", err)
	}
	return habit
}

func TestRecordCompletionSequentialDays(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		updated, err := service.RecordCompletion(1, habit.ID, day(date), "", time.UTC)
		if err != nil {
			t.Fatalf("RecordCompletion(%s) failed: %v", date, err)
		}
		habit = updated
	}

	if habit.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", habit.CurrentStreak)
	}
	if habit.BestStreak < 3 {
		t.Errorf("best streak = %d, want >= 3", habit.BestStreak)
	}
}

func TestRecordCompletionSameDayIsIdempotent(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	first, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC)
	if err != nil {
		t.Fatalf("first RecordCompletion failed: %v", err)
	}
	second, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC)
	if err != nil {
		t.Fatalf("second RecordCompletion failed: %v", err)
	}

	if second.CurrentStreak != first.CurrentStreak {
		t.Errorf("current streak changed on duplicate mark: %d -> %d", first.CurrentStreak, second.CurrentStreak)
	}
	if second.BestStreak != first.BestStreak {
		t.Errorf("best streak changed on duplicate mark: %d -> %d", first.BestStreak, second.BestStreak)
	}
	if len(stub.logs) != 1 {
		t.Errorf("completion log rows = %d, want 1", len(stub.logs))
	}
}

func TestRecordCompletionGapResetsCurrentStreak(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	if _, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC); err != nil {
		t.Fatalf("RecordCompletion failed: %v", err)
	}
	updated, err := service.RecordCompletion(1, habit.ID, day("2026-03-04"), "", time.UTC)
	if err != nil {
		t.Fatalf("RecordCompletion after gap failed: %v", err)
	}

	if updated.CurrentStreak != 1 {
		t.Errorf("current streak after gap = %d, want 1", updated.CurrentStreak)
	}
	if updated.BestStreak != 1 {
		t.Errorf("best streak = %d, want 1", updated.BestStreak)
	}
}

func TestRecordCompletionBackdatedRecomputesFromHistory(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	for _, date := range []string{"2026-03-02", "2026-03-03"} {
		if _, err := service.RecordCompletion(1, habit.ID, day(date), "", time.UTC); err != nil {
			t.Fatalf("RecordCompletion(%s) failed: %v", date, err)
		}
	}

	// Backfill the day before the run started.
	updated, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC)
	if err != nil {
		t.Fatalf("backdated RecordCompletion failed: %v", err)
	}

	if updated.CurrentStreak != 3 {
		t.Errorf("current streak after backfill = %d, want 3", updated.CurrentStreak)
	}
	if updated.LastDoneDate == nil || !updated.LastDoneDate.Equal(day("2026-03-03")) {
		t.Errorf("last done date = %v, want 2026-03-03", updated.LastDoneDate)
	}
}

func TestRecordCompletionStreakFailureIsSwallowed(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)
	stub.streakUpdateErr = errors.New("disk full")

	updated, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC)
	if err != nil {
		t.Fatalf("streak update failure must not fail the completion: %v", err)
	}

	if len(stub.logs) != 1 {
		t.Errorf("completion log rows = %d, want 1 (primary write must commit)", len(stub.logs))
	}
	if updated.CurrentStreak != 0 {
		t.Errorf("streak fields must stay unchanged on secondary failure, got %d", updated.CurrentStreak)
	}
}

func TestRecordCompletionLogInsertFailureIsLoud(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)
	stub.logInsertErr = errors.New("constraint violation")

	if _, err := service.RecordCompletion(1, habit.ID, day("2026-03-01"), "", time.UTC); !errors.Is(err, ErrHabitLogFailed) {
		t.Errorf("err = %v, want ErrHabitLogFailed", err)
	}
}

func TestRecordCompletionUnknownHabit(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)

	if _, err := service.RecordCompletion(1, 42, day("2026-03-01"), "", time.UTC); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("err = %v, want ErrHabitNotFound", err)
	}
}

func TestRecordCompletionOtherUsersHabitLooksMissing(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	if _, err := service.RecordCompletion(2, habit.ID, day("2026-03-01"), "", time.UTC); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("err = %v, want ErrHabitNotFound for foreign owner", err)
	}
}

func TestStreakFromHistory(t *testing.T) {
	logs := []models.HabitLog{
		{Date: day("2026-02-01")},
		{Date: day("2026-02-02")},
		{Date: day("2026-02-03")},
		{Date: day("2026-02-10")},
		{Date: day("2026-02-11")},
	}

	current, best, lastDone := StreakFromHistory(logs, time.UTC)
	if current != 2 {
		t.Errorf("current = %d, want 2", current)
	}
	if best != 3 {
		t.Errorf("best = %d, want 3", best)
	}
	if lastDone == nil || !lastDone.Equal(day("2026-02-11")) {
		t.Errorf("last done = %v, want 2026-02-11", lastDone)
	}
}

func TestStreakFromHistorySurvivesSpringForward(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	// March 8 2026 is a 23-hour day in New York; completing daily across the
	// transition must still read as an unbroken run.
	logs := []models.HabitLog{
		{Date: time.Date(2026, 3, 7, 0, 0, 0, 0, newYork)},
		{Date: time.Date(2026, 3, 8, 0, 0, 0, 0, newYork)},
		{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, newYork)},
	}

	current, best, lastDone := StreakFromHistory(logs, newYork)
	if current != 3 {
		t.Errorf("current = %d, want 3", current)
	}
	if best != 3 {
		t.Errorf("best = %d, want 3", best)
	}
	if lastDone == nil || !lastDone.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, newYork)) {
		t.Errorf("last done = %v, want 2026-03-09 in New York", lastDone)
	}
}

func TestRecordCompletionAcrossSpringForward(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	var updated models.Habit
	for dayOfMonth := 7; dayOfMonth <= 9; dayOfMonth++ {
		updated, err = service.RecordCompletion(1, habit.ID, time.Date(2026, 3, dayOfMonth, 8, 0, 0, 0, newYork), "", newYork)
		if err != nil {
			t.Fatalf("RecordCompletion(March %d) failed: %v", dayOfMonth, err)
		}
	}

	if updated.CurrentStreak != 3 || updated.BestStreak != 3 {
		t.Errorf("streaks across the DST transition = (%d, %d), want (3, 3)", updated.CurrentStreak, updated.BestStreak)
	}
}

func TestStreakFromHistoryEmpty(t *testing.T) {
	current, best, lastDone := StreakFromHistory(nil, time.UTC)
	if current != 0 || best != 0 || lastDone != nil {
		t.Errorf("empty history = (%d, %d, %v), want (0, 0, nil)", current, best, lastDone)
	}
}

func TestRecomputeStreakRepairsDriftedCache(t *testing.T) {
	stub := newHabitRepositoryStub()
	service := NewHabitService(stub)
	habit := newTestHabit(t, stub, service)

	for _, date := range []string{"2026-03-01", "2026-03-02"} {
		if _, err := service.RecordCompletion(1, habit.ID, day(date), "", time.UTC); err != nil {
			t.Fatalf("RecordCompletion(%s) failed: %v", date, err)
		}
	}

	// Corrupt the cached counters behind the service's back.
	drifted := stub.habits[habit.ID]
	drifted.CurrentStreak = 99
	drifted.BestStreak = 99
	stub.habits[habit.ID] = drifted

	repaired, err := service.RecomputeStreak(1, habit.ID, time.UTC)
	if err != nil {
		t.Fatalf("RecomputeStreak failed: %v", err)
	}
	if repaired.CurrentStreak != 2 || repaired.BestStreak != 2 {
		t.Errorf("repaired streaks = (%d, %d), want (2, 2)", repaired.CurrentStreak, repaired.BestStreak)
	}
}
