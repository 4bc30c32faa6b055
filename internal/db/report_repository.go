package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

func (repo *ReportRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyReport, bool, error) {
	entry := models.DailyReport{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyReport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyReport{}, false, nil
	}
	return entry, true, nil
}

func (repo *ReportRepository) FindByShareSlug(slug string) (models.DailyReport, bool, error) {
	entry := models.DailyReport{}
	result := repo.database.
		Where("share_slug = ?", slug).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyReport{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyReport{}, false, nil
	}
	return entry, true, nil
}

func (repo *ReportRepository) Create(entry *models.DailyReport) error {
	return repo.database.Create(entry).Error
}

func (repo *ReportRepository) Save(entry *models.DailyReport) error {
	return repo.database.Save(entry).Error
}
