package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func (repo *WorkoutRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.
		Preload("Exercises", func(query *gorm.DB) *gorm.DB {
			return query.Order("position ASC, id ASC")
		}).
		Preload("Exercises.Exercise").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, start_time DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkoutRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.WorkoutSession, error) {
	sessions := make([]models.WorkoutSession, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *WorkoutRepository) FindByIDForUser(sessionID uint, userID uint) (models.WorkoutSession, bool, error) {
	entry := models.WorkoutSession{}
	result := repo.database.
		Preload("Exercises", func(query *gorm.DB) *gorm.DB {
			return query.Order("position ASC, id ASC")
		}).
		Preload("Exercises.Exercise").
		Where("id = ? AND user_id = ?", sessionID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.WorkoutSession{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WorkoutSession{}, false, nil
	}
	return entry, true, nil
}

// SaveWithItems writes the session and replaces its line items in one
// transaction, so a session and its exercises commit or roll back together.
func (repo *WorkoutRepository) SaveWithItems(session *models.WorkoutSession, items []models.WorkoutExercise) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if session.ID == 0 {
			if err := tx.Omit("Exercises").Create(session).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Omit("Exercises").Save(session).Error; err != nil {
				return err
			}
			if err := tx.Where("workout_session_id = ?", session.ID).Delete(&models.WorkoutExercise{}).Error; err != nil {
				return err
			}
		}

		for index := range items {
			items[index].ID = 0
			items[index].WorkoutSessionID = session.ID
			items[index].Position = index
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		session.Exercises = items
		return nil
	})
}

func (repo *WorkoutRepository) DeleteByIDForUser(sessionID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", sessionID, userID).Delete(&models.WorkoutSession{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *WorkoutRepository) ListItemsForSessions(sessionIDs []uint) ([]models.WorkoutExercise, error) {
	items := make([]models.WorkoutExercise, 0)
	if len(sessionIDs) == 0 {
		return items, nil
	}
	if err := repo.database.
		Where("workout_session_id IN ?", sessionIDs).
		Order("workout_session_id ASC, position ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
