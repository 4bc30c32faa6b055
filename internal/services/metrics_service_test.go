package services

import (
	"errors"
	"testing"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

type metricsRepositoryStub struct {
	rows   map[uint]models.DailyMetrics
	nextID uint
}

func newMetricsRepositoryStub() *metricsRepositoryStub {
	return &metricsRepositoryStub{
		rows:   make(map[uint]models.DailyMetrics),
		nextID: 1,
	}
}

func (stub *metricsRepositoryStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyMetrics, bool, error) {
	for _, row := range stub.rows {
		if row.UserID != userID {
			continue
		}
		if row.Date.Before(dayStart) || !row.Date.Before(dayEnd) {
			continue
		}
		return row, true, nil
	}
	return models.DailyMetrics{}, false, nil
}

func (stub *metricsRepositoryStub) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyMetrics, error) {
	rows := make([]models.DailyMetrics, 0)
	for _, row := range stub.rows {
		if row.UserID != userID {
			continue
		}
		if row.Date.Before(fromStart) || !row.Date.Before(toEnd) {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (stub *metricsRepositoryStub) Create(entry *models.DailyMetrics) error {
	entry.ID = stub.nextID
	stub.nextID++
	stub.rows[entry.ID] = *entry
	return nil
}

func (stub *metricsRepositoryStub) Save(entry *models.DailyMetrics) error {
	stub.rows[entry.ID] = *entry
	return nil
}

func TestUpsertForDateCreatesThenUpdatesInPlace(t *testing.T) {
	stub := newMetricsRepositoryStub()
	service := NewMetricsService(stub)

	first, err := service.UpsertForDate(1, day("2026-03-01"), DailyMetricsInput{
		WaterML:    2000,
		SleepHours: floatPtr(7.5),
	}, time.UTC)
	if err != nil {
		t.Fatalf("first UpsertForDate failed: %v", err)
	}

	second, err := service.UpsertForDate(1, day("2026-03-01"), DailyMetricsInput{
		WaterML:           2500,
		ScreenTimeMinutes: 90,
	}, time.UTC)
	if err != nil {
		t.Fatalf("second UpsertForDate failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created a new row: %d -> %d", first.ID, second.ID)
	}
	if len(stub.rows) != 1 {
		t.Errorf("rows = %d, want one row per (user, date)", len(stub.rows))
	}
	saved := stub.rows[first.ID]
	if saved.WaterML != 2500 {
		t.Errorf("water = %d, want the replacing value 2500", saved.WaterML)
	}
	if saved.SleepHours != nil {
		t.Errorf("sleep = %v, want cleared when the new payload omits it", saved.SleepHours)
	}
}

func TestUpsertForDateRejectsNegativeValues(t *testing.T) {
	service := NewMetricsService(newMetricsRepositoryStub())

	cases := []DailyMetricsInput{
		{WaterML: -1},
		{ScreenTimeMinutes: -5},
		{SleepHours: floatPtr(-0.5)},
		{Steps: intPtr(-100)},
	}
	for _, payload := range cases {
		if _, err := service.UpsertForDate(1, day("2026-03-01"), payload, time.UTC); !errors.Is(err, ErrInvalidMetrics) {
			t.Errorf("payload %+v err = %v, want ErrInvalidMetrics", payload, err)
		}
	}
}

func TestFetchForDateAbsenceIsNotAnError(t *testing.T) {
	service := NewMetricsService(newMetricsRepositoryStub())

	_, found, err := service.FetchForDate(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("FetchForDate failed: %v", err)
	}
	if found {
		t.Error("found = true for a day with no row")
	}
}
