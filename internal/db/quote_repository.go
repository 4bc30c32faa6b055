package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuoteRepository struct {
	database *gorm.DB
}

func NewQuoteRepository(database *gorm.DB) *QuoteRepository {
	return &QuoteRepository{database: database}
}

func (repo *QuoteRepository) ListApproved() ([]models.Quote, error) {
	quotes := make([]models.Quote, 0)
	if err := repo.database.
		Where("approved = ?", true).
		Order("id ASC").
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (repo *QuoteRepository) Create(quote *models.Quote) error {
	return repo.database.Create(quote).Error
}

func (repo *QuoteRepository) FindDisplayLogByDayRange(dayStart time.Time, dayEnd time.Time) (models.QuoteDisplayLog, bool, error) {
	entry := models.QuoteDisplayLog{}
	result := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.QuoteDisplayLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.QuoteDisplayLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *QuoteRepository) CreateDisplayLogIfAbsent(entry *models.QuoteDisplayLog) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
