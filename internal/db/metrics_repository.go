package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type MetricsRepository struct {
	database *gorm.DB
}

func NewMetricsRepository(database *gorm.DB) *MetricsRepository {
	return &MetricsRepository{database: database}
}

func (repo *MetricsRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyMetrics, bool, error) {
	entry := models.DailyMetrics{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyMetrics{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetrics{}, false, nil
	}
	return entry, true, nil
}

func (repo *MetricsRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyMetrics, error) {
	rows := make([]models.DailyMetrics, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *MetricsRepository) Create(entry *models.DailyMetrics) error {
	return repo.database.Create(entry).Error
}

func (repo *MetricsRepository) Save(entry *models.DailyMetrics) error {
	return repo.database.Save(entry).Error
}
