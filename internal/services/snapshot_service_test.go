package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

type reportRepositoryStub struct {
	reports map[uint]models.DailyReport
	nextID  uint
}

func newReportRepositoryStub() *reportRepositoryStub {
	return &reportRepositoryStub{
		reports: make(map[uint]models.DailyReport),
		nextID:  1,
	}
}

func (stub *reportRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error) {
	for _, report := range stub.reports {
		if report.UserID != userID {
			continue
		}
		if report.Date.Before(dayStart) || !report.Date.Before(dayEnd) {
			continue
		}
		return report, true, nil
	}
	return models.DailyReport{}, false, nil
}

func (stub *reportRepositoryStub) FindByShareSlug(slug string) (models.DailyReport, bool, error) {
	for _, report := range stub.reports {
		if report.ShareSlug == slug {
			return report, true, nil
		}
	}
	return models.DailyReport{}, false, nil
}

func (stub *reportRepositoryStub) Create(entry *models.DailyReport) error {
	entry.ID = stub.nextID
	stub.nextID++
	stub.reports[entry.ID] = *entry
	return nil
}

func (stub *reportRepositoryStub) Save(entry *models.DailyReport) error {
	stub.reports[entry.ID] = *entry
	return nil
}

type snapshotFixture struct {
	service     *SnapshotService
	journal     *journalRepositoryStub
	metrics     *metricsRepositoryStub
	workouts    *workoutRepositoryStub
	meals       *mealRepositoryStub
	studies     *studyRepositoryStub
	internships *internshipRepositoryStub
	habits      *habitRepositoryStub
	quotes      *quoteRepositoryStub
	reports     *reportRepositoryStub
}

func newSnapshotFixture() *snapshotFixture {
	fixture := &snapshotFixture{
		journal:     newJournalRepositoryStub(),
		metrics:     newMetricsRepositoryStub(),
		workouts:    newWorkoutRepositoryStub(),
		meals:       newMealRepositoryStub(),
		studies:     newStudyRepositoryStub(),
		internships: newInternshipRepositoryStub(),
		habits:      newHabitRepositoryStub(),
		quotes:      newQuoteRepositoryStub(),
		reports:     newReportRepositoryStub(),
	}
	catalog := NewCatalogService(newExerciseCatalogStub(), newFoodCatalogStub())
	fixture.service = NewSnapshotService(
		NewJournalService(fixture.journal),
		NewMetricsService(fixture.metrics),
		NewWorkoutService(fixture.workouts, catalog),
		NewNutritionService(fixture.meals, catalog),
		NewStudyService(fixture.studies, fixture.internships),
		NewHabitService(fixture.habits),
		NewQuoteService(fixture.quotes),
		fixture.reports,
	)
	return fixture
}

func TestBuildSnapshotEmptyDayCreatesJournalEntry(t *testing.T) {
	fixture := newSnapshotFixture()

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}

	if snapshot.Journal.ID == 0 {
		t.Error("viewing an empty day should create its journal entry")
	}
	if len(fixture.journal.entries) != 1 {
		t.Errorf("journal rows = %d, want 1", len(fixture.journal.entries))
	}
	if snapshot.Metrics != nil {
		t.Error("metrics should be absent, not zero-valued, when no row exists")
	}
	if snapshot.Quote != nil {
		t.Error("quote should be absent when no approved quotes exist")
	}
	if snapshot.Workouts == nil || snapshot.Meals == nil || snapshot.Habits == nil {
		t.Error("collection fields should be empty slices, not nil")
	}
}

func TestBuildSnapshotAggregatesTotals(t *testing.T) {
	fixture := newSnapshotFixture()

	fixture.workouts.sessions[1] = models.WorkoutSession{
		ID: 1, UserID: 1, Date: day("2026-03-01"),
		Exercises: []models.WorkoutExercise{
			{Exercise: models.Exercise{Name: "Bench Press"}, Sets: 4, RepsPerformed: intPtr(10), WeightKg: floatPtr(50)},
		},
	}
	fixture.meals.entries[1] = models.MealEntry{
		ID: 1, UserID: 1, Date: day("2026-03-01"), MealType: models.MealLunch,
		Items: []models.MealItem{
			{FoodItem: models.FoodItem{Name: "Chicken Breast"}, AmountGrams: 150, ProteinCalculated: floatPtr(46.5), CaloriesCalculated: floatPtr(247.5)},
		},
	}
	fixture.studies.sessions[1] = models.StudySession{ID: 1, UserID: 1, Date: day("2026-03-01"), ActivityType: models.ActivityDSA, DurationHours: floatPtr(2.5)}
	fixture.internships.logs[1] = models.InternshipLog{ID: 1, UserID: 1, Date: day("2026-03-01"), TaskTitle: "Standup", Hours: 4}

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}

	if snapshot.Totals.WorkoutVolume != 2000 {
		t.Errorf("workout volume = %v, want 2000", snapshot.Totals.WorkoutVolume)
	}
	if snapshot.Totals.Protein != 46.5 {
		t.Errorf("protein = %v, want 46.5", snapshot.Totals.Protein)
	}
	if snapshot.Totals.Calories != 247.5 {
		t.Errorf("calories = %v, want 247.5", snapshot.Totals.Calories)
	}
	if snapshot.Totals.StudyHours != 2.5 {
		t.Errorf("study hours = %v, want 2.5", snapshot.Totals.StudyHours)
	}
	if snapshot.Totals.InternshipHours != 4 {
		t.Errorf("internship hours = %v, want 4", snapshot.Totals.InternshipHours)
	}
	if len(snapshot.Workouts) != 1 || snapshot.Workouts[0].Volume != 2000 {
		t.Errorf("workouts = %+v, want one session with its volume", snapshot.Workouts)
	}
	if len(snapshot.Meals) != 1 || snapshot.Meals[0].Protein != 46.5 {
		t.Errorf("meals = %+v, want one meal with derived totals", snapshot.Meals)
	}
}

func TestBuildSnapshotHabitCompletionFlags(t *testing.T) {
	fixture := newSnapshotFixture()
	fixture.habits.habits[1] = models.Habit{ID: 1, UserID: 1, Name: "Read", Active: true, CurrentStreak: 3, BestStreak: 5}
	fixture.habits.habits[2] = models.Habit{ID: 2, UserID: 1, Name: "Meditate", Active: true}
	fixture.habits.habits[3] = models.Habit{ID: 3, UserID: 1, Name: "Retired", Active: false}
	fixture.habits.logs = append(fixture.habits.logs, models.HabitLog{ID: 1, HabitID: 1, Date: day("2026-03-01")})

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}

	if len(snapshot.Habits) != 2 {
		t.Fatalf("habits = %d, want active habits only", len(snapshot.Habits))
	}
	if snapshot.Totals.HabitsDone != 1 {
		t.Errorf("habits done = %d, want 1", snapshot.Totals.HabitsDone)
	}
	for _, habit := range snapshot.Habits {
		if habit.ID == 1 && !habit.DoneToday {
			t.Error("completed habit should be flagged done")
		}
		if habit.ID == 2 && habit.DoneToday {
			t.Error("uncompleted habit should not be flagged done")
		}
	}
}

func TestSaveReportMintsSlugOnce(t *testing.T) {
	fixture := newSnapshotFixture()

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	first, err := fixture.service.SaveReport(1, day("2026-03-01"), snapshot, time.UTC)
	if err != nil {
		t.Fatalf("first SaveReport failed: %v", err)
	}
	if len(first.ShareSlug) == 0 {
		t.Fatal("report should be minted with a share slug")
	}

	second, err := fixture.service.SaveReport(1, day("2026-03-01"), snapshot, time.UTC)
	if err != nil {
		t.Fatalf("second SaveReport failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("regeneration created a new row: %d -> %d", first.ID, second.ID)
	}
	if second.ShareSlug != first.ShareSlug {
		t.Errorf("share slug changed on regeneration: %q -> %q", first.ShareSlug, second.ShareSlug)
	}
	if len(fixture.reports.reports) != 1 {
		t.Errorf("report rows = %d, want 1", len(fixture.reports.reports))
	}
}

func TestFetchSharedReportRoundTrip(t *testing.T) {
	fixture := newSnapshotFixture()

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	saved, err := fixture.service.SaveReport(1, day("2026-03-01"), snapshot, time.UTC)
	if err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	report, decoded, err := fixture.service.FetchSharedReport(saved.ShareSlug)
	if err != nil {
		t.Fatalf("FetchSharedReport failed: %v", err)
	}
	if report.ID != saved.ID {
		t.Errorf("report ID = %d, want %d", report.ID, saved.ID)
	}
	if decoded.Date != "2026-03-01" {
		t.Errorf("decoded date = %q, want 2026-03-01", decoded.Date)
	}
}

func TestFetchSharedReportUnknownSlug(t *testing.T) {
	fixture := newSnapshotFixture()
	if _, _, err := fixture.service.FetchSharedReport("nope"); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("err = %v, want ErrReportNotFound", err)
	}
}

func TestSnapshotSerializationOmitsAbsentSections(t *testing.T) {
	fixture := newSnapshotFixture()

	snapshot, err := fixture.service.BuildSnapshot(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	serialized, err := json.Marshal(snapshot)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(serialized, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, present := decoded["metrics"]; present {
		t.Error("absent metrics should be omitted from the serialized snapshot")
	}
	if _, present := decoded["quote"]; present {
		t.Error("absent quote should be omitted from the serialized snapshot")
	}
	if _, present := decoded["workouts"]; !present {
		t.Error("collection sections should serialize as empty arrays")
	}
}
