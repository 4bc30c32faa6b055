package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type StudyRepository struct {
	database *gorm.DB
}

func NewStudyRepository(database *gorm.DB) *StudyRepository {
	return &StudyRepository{database: database}
}

func (repo *StudyRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.StudySession, error) {
	sessions := make([]models.StudySession, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, start_time DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *StudyRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.StudySession, error) {
	sessions := make([]models.StudySession, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *StudyRepository) FindByIDForUser(sessionID uint, userID uint) (models.StudySession, bool, error) {
	entry := models.StudySession{}
	result := repo.database.
		Where("id = ? AND user_id = ?", sessionID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.StudySession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudySession{}, false, nil
	}
	return entry, true, nil
}

func (repo *StudyRepository) Create(session *models.StudySession) error {
	return repo.database.Create(session).Error
}

func (repo *StudyRepository) Save(session *models.StudySession) error {
	return repo.database.Save(session).Error
}

func (repo *StudyRepository) DeleteByIDForUser(sessionID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&models.StudySession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

type InternshipRepository struct {
	database *gorm.DB
}

func NewInternshipRepository(database *gorm.DB) *InternshipRepository {
	return &InternshipRepository{database: database}
}

func (repo *InternshipRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.InternshipLog, error) {
	logs := make([]models.InternshipLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *InternshipRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.InternshipLog, error) {
	logs := make([]models.InternshipLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *InternshipRepository) Create(entry *models.InternshipLog) error {
	return repo.database.Create(entry).Error
}

func (repo *InternshipRepository) DeleteByIDForUser(logID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.InternshipLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
