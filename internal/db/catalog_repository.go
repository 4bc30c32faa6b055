package db

import (
	"github.com/harsh-kumbhar/lifelog/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) FindByNormalizedName(name string) (models.Exercise, bool, error) {
	entry := models.Exercise{}
	result := repo.database.
		Where("lower(trim(name)) = ?", name).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return entry, true, nil
}

func (repo *ExerciseRepository) Create(exercise *models.Exercise) error {
	return repo.database.Create(exercise).Error
}

func (repo *ExerciseRepository) ListAll() ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

type FoodRepository struct {
	database *gorm.DB
}

func NewFoodRepository(database *gorm.DB) *FoodRepository {
	return &FoodRepository{database: database}
}

func (repo *FoodRepository) FindByNormalizedName(name string) (models.FoodItem, bool, error) {
	entry := models.FoodItem{}
	result := repo.database.
		Where("lower(trim(name)) = ?", name).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.FoodItem{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.FoodItem{}, false, nil
	}
	return entry, true, nil
}

func (repo *FoodRepository) FindByID(foodID uint) (models.FoodItem, error) {
	var food models.FoodItem
	if err := repo.database.First(&food, foodID).Error; err != nil {
		return models.FoodItem{}, err
	}
	return food, nil
}

func (repo *FoodRepository) Create(food *models.FoodItem) error {
	return repo.database.Create(food).Error
}

func (repo *FoodRepository) ListAll() ([]models.FoodItem, error) {
	foods := make([]models.FoodItem, 0)
	if err := repo.database.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}
