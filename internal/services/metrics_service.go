package services

import (
	"errors"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrMetricsLoadFailed = errors.New("load daily metrics failed")
	ErrMetricsSaveFailed = errors.New("save daily metrics failed")
	ErrInvalidMetrics    = errors.New("metric values must be non-negative")
)

type MetricsRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyMetrics, bool, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyMetrics, error)
	Create(entry *models.DailyMetrics) error
	Save(entry *models.DailyMetrics) error
}

type DailyMetricsInput struct {
	WaterML           int
	SleepHours        *float64
	ScreenTimeMinutes int
	Steps             *int
	Mood              string
	Notes             string
}

type MetricsService struct {
	metrics MetricsRepository
}

func NewMetricsService(metrics MetricsRepository) *MetricsService {
	return &MetricsService{metrics: metrics}
}

// UpsertForDate writes the day's scalar metrics, keyed by (user, date):
// one row per day, updated in place.
func (service *MetricsService) UpsertForDate(userID uint, day time.Time, payload DailyMetricsInput, location *time.Location) (models.DailyMetrics, error) {
	if payload.WaterML < 0 || payload.ScreenTimeMinutes < 0 {
		return models.DailyMetrics{}, ErrInvalidMetrics
	}
	if payload.SleepHours != nil && *payload.SleepHours < 0 {
		return models.DailyMetrics{}, ErrInvalidMetrics
	}
	if payload.Steps != nil && *payload.Steps < 0 {
		return models.DailyMetrics{}, ErrInvalidMetrics
	}

	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.metrics.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyMetrics{}, ErrMetricsLoadFailed
	}

	entry.WaterML = payload.WaterML
	entry.SleepHours = payload.SleepHours
	entry.ScreenTimeMinutes = payload.ScreenTimeMinutes
	entry.Steps = payload.Steps
	entry.Mood = payload.Mood
	entry.Notes = payload.Notes

	if found {
		if err := service.metrics.Save(&entry); err != nil {
			return models.DailyMetrics{}, ErrMetricsSaveFailed
		}
		return entry, nil
	}

	entry.UserID = userID
	entry.Date = dayStart
	if err := service.metrics.Create(&entry); err != nil {
		return models.DailyMetrics{}, ErrMetricsSaveFailed
	}
	return entry, nil
}

// FetchForDate returns the day's metrics row when present; found reports
// whether one exists (absence is "not yet created", not an error).
func (service *MetricsService) FetchForDate(userID uint, day time.Time, location *time.Location) (models.DailyMetrics, bool, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.metrics.FindByUserAndDayRange(userID, dayStart, dayEnd)
}
