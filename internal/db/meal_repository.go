package db

import (
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.MealEntry, error) {
	entries := make([]models.MealEntry, 0)
	if err := repo.database.
		Preload("Items").
		Preload("Items.FoodItem").
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, time DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *MealRepository) FindByIDForUser(entryID uint, userID uint) (models.MealEntry, bool, error) {
	entry := models.MealEntry{}
	result := repo.database.
		Preload("Items").
		Preload("Items.FoodItem").
		Where("id = ? AND user_id = ?", entryID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.MealEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealEntry{}, false, nil
	}
	return entry, true, nil
}

// SaveWithItems writes the meal entry and replaces its line items in one
// transaction (all-or-nothing with the parent).
func (repo *MealRepository) SaveWithItems(entry *models.MealEntry, items []models.MealItem) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if entry.ID == 0 {
			if err := tx.Omit("Items").Create(entry).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Omit("Items").Save(entry).Error; err != nil {
				return err
			}
			if err := tx.Where("meal_entry_id = ?", entry.ID).Delete(&models.MealItem{}).Error; err != nil {
				return err
			}
		}

		for index := range items {
			items[index].ID = 0
			items[index].MealEntryID = entry.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		entry.Items = items
		return nil
	})
}

func (repo *MealRepository) DeleteByIDForUser(entryID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.MealEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
