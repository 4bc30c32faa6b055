package services

import (
	"errors"
	"strings"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrEmptyCatalogName     = errors.New("catalog name is required")
	ErrFoodNotFound         = errors.New("food not found")
	ErrCreateExerciseFailed = errors.New("create exercise failed")
)

type ExerciseCatalogRepository interface {
	FindByNormalizedName(name string) (models.Exercise, bool, error)
	Create(exercise *models.Exercise) error
	ListAll() ([]models.Exercise, error)
}

type FoodCatalogRepository interface {
	FindByNormalizedName(name string) (models.FoodItem, bool, error)
	Create(food *models.FoodItem) error
	ListAll() ([]models.FoodItem, error)
}

// CatalogService resolves shared reference data by name. Matching is
// case-insensitive; stored names keep their original casing.
type CatalogService struct {
	exercises ExerciseCatalogRepository
	foods     FoodCatalogRepository
}

func NewCatalogService(exercises ExerciseCatalogRepository, foods FoodCatalogRepository) *CatalogService {
	return &CatalogService{
		exercises: exercises,
		foods:     foods,
	}
}

func NormalizeCatalogName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ResolveExercise looks an exercise up by name and creates it when missing.
// Exercises carry no data that a casual auto-create could lose.
func (service *CatalogService) ResolveExercise(name string) (models.Exercise, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Exercise{}, ErrEmptyCatalogName
	}

	existing, found, err := service.exercises.FindByNormalizedName(NormalizeCatalogName(trimmed))
	if err != nil {
		return models.Exercise{}, err
	}
	if found {
		return existing, nil
	}

	created := models.Exercise{Name: trimmed}
	if err := service.exercises.Create(&created); err != nil {
		// Lost the insert race: another writer created the same name first.
		retried, foundRetry, retryErr := service.exercises.FindByNormalizedName(NormalizeCatalogName(trimmed))
		if retryErr == nil && foundRetry {
			return retried, nil
		}
		return models.Exercise{}, ErrCreateExerciseFailed
	}
	return created, nil
}

// ResolveFood looks a food up by name and fails when it does not exist.
// Auto-creating a food would produce a row with no macro data, silently
// zeroing every contribution derived from it.
func (service *CatalogService) ResolveFood(name string) (models.FoodItem, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.FoodItem{}, ErrEmptyCatalogName
	}

	existing, found, err := service.foods.FindByNormalizedName(NormalizeCatalogName(trimmed))
	if err != nil {
		return models.FoodItem{}, err
	}
	if !found {
		return models.FoodItem{}, ErrFoodNotFound
	}
	return existing, nil
}

func (service *CatalogService) ListExercises() ([]models.Exercise, error) {
	return service.exercises.ListAll()
}

func (service *CatalogService) ListFoods() ([]models.FoodItem, error) {
	return service.foods.ListAll()
}

func (service *CatalogService) AddFood(food *models.FoodItem) error {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return ErrEmptyCatalogName
	}
	return service.foods.Create(food)
}
