package services

import (
	"errors"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrMealNotFound        = errors.New("meal entry not found")
	ErrMealSaveFailed      = errors.New("save meal entry failed")
	ErrMealDeleteFailed    = errors.New("delete meal entry failed")
	ErrInvalidMealType     = errors.New("invalid meal type")
	ErrInvalidFoodAmount   = errors.New("food amount must be positive")
)

type MealRepository interface {
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.MealEntry, error)
	FindByIDForUser(entryID uint, userID uint) (models.MealEntry, bool, error)
	SaveWithItems(entry *models.MealEntry, items []models.MealItem) error
	DeleteByIDForUser(entryID uint, userID uint) (bool, error)
}

type MealItemInput struct {
	FoodName    string
	AmountGrams float64
	Unit        string
}

type MealEntryInput struct {
	Date     time.Time
	Time     string
	MealType string
	Notes    string
	Items    []MealItemInput
}

type NutritionService struct {
	meals   MealRepository
	catalog *CatalogService
}

func NewNutritionService(meals MealRepository, catalog *CatalogService) *NutritionService {
	return &NutritionService{
		meals:   meals,
		catalog: catalog,
	}
}

// SaveMeal creates or updates a meal entry with its line items in one
// transaction. Foods must resolve to existing catalog rows; macro
// contributions are derived at write time from the per-100g values.
func (service *NutritionService) SaveMeal(userID uint, entryID uint, payload MealEntryInput, location *time.Location) (models.MealEntry, error) {
	if !models.ValidMealType(payload.MealType) {
		return models.MealEntry{}, ErrInvalidMealType
	}

	entry := models.MealEntry{UserID: userID}
	if entryID != 0 {
		existing, found, err := service.meals.FindByIDForUser(entryID, userID)
		if err != nil {
			return models.MealEntry{}, err
		}
		if !found {
			return models.MealEntry{}, ErrMealNotFound
		}
		entry = existing
	}

	entry.Date = DateAtLocation(payload.Date, location)
	entry.Time = payload.Time
	entry.MealType = payload.MealType
	entry.Notes = payload.Notes

	items := make([]models.MealItem, 0, len(payload.Items))
	for _, itemInput := range payload.Items {
		if itemInput.AmountGrams <= 0 {
			return models.MealEntry{}, ErrInvalidFoodAmount
		}
		food, err := service.catalog.ResolveFood(itemInput.FoodName)
		if err != nil {
			return models.MealEntry{}, err
		}
		protein := ProteinContribution(food.ProteinPer100g, itemInput.AmountGrams)
		items = append(items, models.MealItem{
			FoodItemID:         food.ID,
			FoodItem:           food,
			AmountGrams:        itemInput.AmountGrams,
			Unit:               itemInput.Unit,
			ProteinCalculated:  &protein,
			CaloriesCalculated: MacroContribution(food.CaloriesPer100g, itemInput.AmountGrams),
		})
	}

	if err := service.meals.SaveWithItems(&entry, items); err != nil {
		return models.MealEntry{}, ErrMealSaveFailed
	}
	return entry, nil
}

func (service *NutritionService) FetchMealsForDate(userID uint, day time.Time, location *time.Location) ([]models.MealEntry, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.meals.ListByUserDayRange(userID, dayStart, dayEnd)
}

// DailyTotals returns the day's protein and calorie sums across all meals.
func (service *NutritionService) DailyTotals(userID uint, day time.Time, location *time.Location) (float64, float64, error) {
	meals, err := service.FetchMealsForDate(userID, day, location)
	if err != nil {
		return 0, 0, err
	}
	protein, calories := DailyMacroTotals(meals)
	return protein, calories, nil
}

func (service *NutritionService) DeleteMeal(userID uint, entryID uint) error {
	deleted, err := service.meals.DeleteByIDForUser(entryID, userID)
	if err != nil {
		return ErrMealDeleteFailed
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}
