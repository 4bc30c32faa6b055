package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"github.com/harsh-kumbhar/lifelog/internal/security"
)

const snapshotDateLayout = "2006-01-02"

const shareSlugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
const shareSlugLength = 20

var (
	ErrSnapshotBuildFailed = errors.New("build day snapshot failed")
	ErrReportSaveFailed    = errors.New("save daily report failed")
	ErrReportNotFound      = errors.New("daily report not found")
)

type ReportRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error)
	FindByShareSlug(slug string) (models.DailyReport, bool, error)
	Create(entry *models.DailyReport) error
	Save(entry *models.DailyReport) error
}

// DaySnapshot is the report-ready view of one user's one day across every
// tracked domain. It is assembled from source rows on demand and is safe to
// rebuild at any time.
type DaySnapshot struct {
	Date           string              `json:"date"`
	Journal        SnapshotJournal     `json:"journal"`
	Metrics        *SnapshotMetrics    `json:"metrics,omitempty"`
	Workouts       []SnapshotWorkout   `json:"workouts"`
	Meals          []SnapshotMeal      `json:"meals"`
	StudySessions  []SnapshotStudy     `json:"study_sessions"`
	InternshipLogs []SnapshotIntern    `json:"internship_logs"`
	Habits         []SnapshotHabit     `json:"habits"`
	Quote          *SnapshotQuote      `json:"quote,omitempty"`
	Totals         SnapshotTotals      `json:"totals"`
}

type SnapshotJournal struct {
	ID          uint   `json:"id"`
	MorningNote string `json:"morning_note"`
	EveningNote string `json:"evening_note"`
	GratefulFor string `json:"grateful_for"`
	Highlights  string `json:"highlights"`
	Mood        string `json:"mood"`
}

type SnapshotMetrics struct {
	WaterML           int      `json:"water_ml"`
	SleepHours        *float64 `json:"sleep_hours,omitempty"`
	ScreenTimeMinutes int      `json:"screen_time_minutes"`
	Steps             *int     `json:"steps,omitempty"`
	Mood              string   `json:"mood"`
	Notes             string   `json:"notes"`
}

type SnapshotWorkout struct {
	ID              uint                  `json:"id"`
	StartTime       string                `json:"start_time,omitempty"`
	EndTime         string                `json:"end_time,omitempty"`
	DurationMinutes *int                  `json:"duration_minutes,omitempty"`
	Location        string                `json:"location,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Volume          float64               `json:"volume"`
	Exercises       []SnapshotWorkoutItem `json:"exercises"`
}

type SnapshotWorkoutItem struct {
	Exercise      string   `json:"exercise"`
	Sets          int      `json:"sets"`
	TargetReps    string   `json:"target_reps,omitempty"`
	RepsPerformed *int     `json:"reps_performed,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
}

type SnapshotMeal struct {
	ID       uint               `json:"id"`
	MealType string             `json:"meal_type"`
	Time     string             `json:"time,omitempty"`
	Protein  float64            `json:"protein"`
	Calories float64            `json:"calories"`
	Items    []SnapshotMealItem `json:"items"`
}

type SnapshotMealItem struct {
	Food        string   `json:"food"`
	AmountGrams float64  `json:"amount_grams"`
	Protein     *float64 `json:"protein,omitempty"`
	Calories    *float64 `json:"calories,omitempty"`
}

type SnapshotStudy struct {
	ID            uint     `json:"id"`
	ActivityType  string   `json:"activity_type"`
	StartTime     string   `json:"start_time,omitempty"`
	EndTime       string   `json:"end_time,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type SnapshotIntern struct {
	ID        uint    `json:"id"`
	TaskTitle string  `json:"task_title"`
	Hours     float64 `json:"hours"`
	Billable  bool    `json:"billable"`
}

type SnapshotHabit struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	DoneToday     bool   `json:"done_today"`
}

type SnapshotQuote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

type SnapshotTotals struct {
	Protein         float64 `json:"protein"`
	Calories        float64 `json:"calories"`
	WorkoutVolume   float64 `json:"workout_volume"`
	StudyHours      float64 `json:"study_hours"`
	InternshipHours float64 `json:"internship_hours"`
	HabitsDone      int     `json:"habits_done"`
}

type SnapshotService struct {
	journal   *JournalService
	metrics   *MetricsService
	workouts  *WorkoutService
	nutrition *NutritionService
	studies   *StudyService
	habits    *HabitService
	quotes    *QuoteService
	reports   ReportRepository
}

func NewSnapshotService(
	journal *JournalService,
	metrics *MetricsService,
	workouts *WorkoutService,
	nutrition *NutritionService,
	studies *StudyService,
	habits *HabitService,
	quotes *QuoteService,
	reports ReportRepository,
) *SnapshotService {
	return &SnapshotService{
		journal:   journal,
		metrics:   metrics,
		workouts:  workouts,
		nutrition: nutrition,
		studies:   studies,
		habits:    habits,
		quotes:    quotes,
		reports:   reports,
	}
}

// BuildSnapshot gathers the day's rows across every domain into one
// consistent structure. Missing journal rows are lazily created; all other
// absences are represented as empty, never as errors.
func (service *SnapshotService) BuildSnapshot(userID uint, day time.Time, location *time.Location) (DaySnapshot, error) {
	dayStart := DateAtLocation(day, location)
	snapshot := DaySnapshot{
		Date:           dayStart.Format(snapshotDateLayout),
		Workouts:       []SnapshotWorkout{},
		Meals:          []SnapshotMeal{},
		StudySessions:  []SnapshotStudy{},
		InternshipLogs: []SnapshotIntern{},
		Habits:         []SnapshotHabit{},
	}

	journalEntry, err := service.journal.GetOrCreateForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	snapshot.Journal = SnapshotJournal{
		ID:          journalEntry.ID,
		MorningNote: journalEntry.MorningNote,
		EveningNote: journalEntry.EveningNote,
		GratefulFor: journalEntry.GratefulFor,
		Highlights:  journalEntry.Highlights,
		Mood:        journalEntry.Mood,
	}

	metricsRow, metricsFound, err := service.metrics.FetchForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	if metricsFound {
		snapshot.Metrics = &SnapshotMetrics{
			WaterML:           metricsRow.WaterML,
			SleepHours:        metricsRow.SleepHours,
			ScreenTimeMinutes: metricsRow.ScreenTimeMinutes,
			Steps:             metricsRow.Steps,
			Mood:              metricsRow.Mood,
			Notes:             metricsRow.Notes,
		}
	}

	workoutSessions, err := service.workouts.FetchSessionsForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	for _, session := range workoutSessions {
		volume := WorkoutVolume(session.Exercises)
		snapshot.Totals.WorkoutVolume += volume

		items := make([]SnapshotWorkoutItem, 0, len(session.Exercises))
		for _, item := range session.Exercises {
			items = append(items, SnapshotWorkoutItem{
				Exercise:      item.Exercise.Name,
				Sets:          item.Sets,
				TargetReps:    item.TargetReps,
				RepsPerformed: item.RepsPerformed,
				WeightKg:      item.WeightKg,
			})
		}
		snapshot.Workouts = append(snapshot.Workouts, SnapshotWorkout{
			ID:              session.ID,
			StartTime:       session.StartTime,
			EndTime:         session.EndTime,
			DurationMinutes: session.DurationMinutes,
			Location:        session.Location,
			Notes:           session.Notes,
			Volume:          volume,
			Exercises:       items,
		})
	}

	meals, err := service.nutrition.FetchMealsForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	for _, meal := range meals {
		protein, calories := MealTotals(meal.Items)
		items := make([]SnapshotMealItem, 0, len(meal.Items))
		for _, item := range meal.Items {
			items = append(items, SnapshotMealItem{
				Food:        item.FoodItem.Name,
				AmountGrams: item.AmountGrams,
				Protein:     item.ProteinCalculated,
				Calories:    item.CaloriesCalculated,
			})
		}
		snapshot.Meals = append(snapshot.Meals, SnapshotMeal{
			ID:       meal.ID,
			MealType: meal.MealType,
			Time:     meal.Time,
			Protein:  protein,
			Calories: calories,
			Items:    items,
		})
	}
	snapshot.Totals.Protein, snapshot.Totals.Calories = DailyMacroTotals(meals)

	studySessions, err := service.studies.FetchSessionsForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	for _, session := range studySessions {
		snapshot.StudySessions = append(snapshot.StudySessions, SnapshotStudy{
			ID:            session.ID,
			ActivityType:  session.ActivityType,
			StartTime:     session.StartTime,
			EndTime:       session.EndTime,
			DurationHours: session.DurationHours,
			Notes:         session.Notes,
		})
	}
	snapshot.Totals.StudyHours = StudyHoursTotal(studySessions)

	internshipLogs, err := service.studies.FetchInternshipLogsForDate(userID, dayStart, location)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	for _, entry := range internshipLogs {
		snapshot.InternshipLogs = append(snapshot.InternshipLogs, SnapshotIntern{
			ID:        entry.ID,
			TaskTitle: entry.TaskTitle,
			Hours:     entry.Hours,
			Billable:  entry.Billable,
		})
	}
	snapshot.Totals.InternshipHours = InternshipHoursTotal(internshipLogs)

	habits, err := service.habits.ListHabits(userID)
	if err != nil {
		return DaySnapshot{}, ErrSnapshotBuildFailed
	}
	for _, habit := range habits {
		if !habit.Active {
			continue
		}
		done, err := service.habits.CompletedOn(habit.ID, dayStart, location)
		if err != nil {
			return DaySnapshot{}, ErrSnapshotBuildFailed
		}
		if done {
			snapshot.Totals.HabitsDone++
		}
		snapshot.Habits = append(snapshot.Habits, SnapshotHabit{
			ID:            habit.ID,
			Name:          habit.Name,
			CurrentStreak: habit.CurrentStreak,
			BestStreak:    habit.BestStreak,
			DoneToday:     done,
		})
	}

	// Quote selection may vary between deployments; everything above stays
	// stable regardless of what this returns.
	quote, quoteFound, err := service.quotes.QuoteOfTheDay(dayStart, location)
	if err != nil {
		log.Printf("event=quote_lookup_failed date=%s err=%v", snapshot.Date, err)
	} else if quoteFound {
		snapshot.Quote = &SnapshotQuote{Text: quote.Text, Author: quote.Author}
	}

	return snapshot, nil
}

// SaveReport persists the snapshot as the day's denormalized report row,
// upserting on (user, date). The share slug is minted once and survives
// regeneration.
func (service *SnapshotService) SaveReport(userID uint, day time.Time, snapshot DaySnapshot, location *time.Location) (models.DailyReport, error) {
	serialized, err := json.Marshal(snapshot)
	if err != nil {
		return models.DailyReport{}, ErrReportSaveFailed
	}

	dayStart, dayEnd := DayRange(day, location)
	report, found, err := service.reports.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyReport{}, ErrReportSaveFailed
	}

	report.Snapshot = serialized
	report.GeneratedAt = time.Now()
	if found {
		if err := service.reports.Save(&report); err != nil {
			return models.DailyReport{}, ErrReportSaveFailed
		}
		return report, nil
	}

	slug, err := security.RandomString(shareSlugLength, shareSlugAlphabet)
	if err != nil {
		return models.DailyReport{}, ErrReportSaveFailed
	}
	report.UserID = userID
	report.Date = dayStart
	report.ShareSlug = slug
	if err := service.reports.Create(&report); err != nil {
		return models.DailyReport{}, ErrReportSaveFailed
	}
	return report, nil
}

// FetchSharedReport loads a persisted report by its share slug.
func (service *SnapshotService) FetchSharedReport(slug string) (models.DailyReport, DaySnapshot, error) {
	report, found, err := service.reports.FindByShareSlug(slug)
	if err != nil || !found {
		return models.DailyReport{}, DaySnapshot{}, ErrReportNotFound
	}
	snapshot := DaySnapshot{}
	if err := json.Unmarshal(report.Snapshot, &snapshot); err != nil {
		return models.DailyReport{}, DaySnapshot{}, ErrReportNotFound
	}
	return report, snapshot, nil
}
