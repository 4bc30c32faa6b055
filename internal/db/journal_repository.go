package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalRepository struct {
	database *gorm.DB
}

func NewJournalRepository(database *gorm.DB) *JournalRepository {
	return &JournalRepository{database: database}
}

func (repo *JournalRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error) {
	entry := models.JournalEntry{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.JournalEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.JournalEntry{}, false, nil
	}
	return entry, true, nil
}

// CreateIfAbsent inserts an entry unless the (user_id, date) row already
// exists, removing the get-or-create race window. The caller re-reads after a
// conflict to pick up the winner's row.
func (repo *JournalRepository) CreateIfAbsent(entry *models.JournalEntry) (bool, error) {
	result := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *JournalRepository) Save(entry *models.JournalEntry) error {
	return repo.database.Save(entry).Error
}
