package services

import (
	"errors"
	"testing"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

type mealRepositoryStub struct {
	entries map[uint]models.MealEntry
	nextID  uint
	saveErr error
}

func newMealRepositoryStub() *mealRepositoryStub {
	return &mealRepositoryStub{
		entries: make(map[uint]models.MealEntry),
		nextID:  1,
	}
}

func (stub *mealRepositoryStub) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.MealEntry, error) {
	entries := make([]models.MealEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID != userID {
			continue
		}
		if entry.Date.Before(dayStart) || !entry.Date.Before(dayEnd) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (stub *mealRepositoryStub) FindByIDForUser(entryID uint, userID uint) (models.MealEntry, bool, error) {
	entry, exists := stub.entries[entryID]
	if !exists || entry.UserID != userID {
		return models.MealEntry{}, false, nil
	}
	return entry, true, nil
}

func (stub *mealRepositoryStub) SaveWithItems(entry *models.MealEntry, items []models.MealItem) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	if entry.ID == 0 {
		entry.ID = stub.nextID
		stub.nextID++
	}
	entry.Items = items
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *mealRepositoryStub) DeleteByIDForUser(entryID uint, userID uint) (bool, error) {
	entry, exists := stub.entries[entryID]
	if !exists || entry.UserID != userID {
		return false, nil
	}
	delete(stub.entries, entryID)
	return true, nil
}

func newNutritionFixture() (*NutritionService, *mealRepositoryStub, *foodCatalogStub) {
	meals := newMealRepositoryStub()
	exercises := newExerciseCatalogStub()
	foods := newFoodCatalogStub()
	catalog := NewCatalogService(exercises, foods)
	return NewNutritionService(meals, catalog), meals, foods
}

func TestSaveMealDerivesMacroContributions(t *testing.T) {
	service, meals, foods := newNutritionFixture()
	calories := 165.0
	foods.byNormalizedName["chicken breast"] = models.FoodItem{
		ID:              1,
		Name:            "Chicken Breast",
		ProteinPer100g:  31.0,
		CaloriesPer100g: &calories,
	}

	entry, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		Time:     "13:00",
		MealType: models.MealLunch,
		Items: []MealItemInput{
			{FoodName: "chicken breast", AmountGrams: 150, Unit: "g"},
		},
	}, time.UTC)
	if err != nil {
		t.Fatalf("SaveMeal failed: %v", err)
	}

	saved := meals.entries[entry.ID]
	if len(saved.Items) != 1 {
		t.Fatalf("saved items = %d, want 1", len(saved.Items))
	}
	item := saved.Items[0]
	if item.ProteinCalculated == nil || *item.ProteinCalculated != 46.5 {
		t.Errorf("derived protein = %v, want 46.5", item.ProteinCalculated)
	}
	if item.CaloriesCalculated == nil || *item.CaloriesCalculated != 247.5 {
		t.Errorf("derived calories = %v, want 247.5", item.CaloriesCalculated)
	}
}

func TestSaveMealUnknownCalorieValueStaysUnset(t *testing.T) {
	service, meals, foods := newNutritionFixture()
	foods.byNormalizedName["homemade dal"] = models.FoodItem{
		ID:             2,
		Name:           "Homemade Dal",
		ProteinPer100g: 9.0,
	}

	entry, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealDinner,
		Items: []MealItemInput{
			{FoodName: "Homemade Dal", AmountGrams: 200},
		},
	}, time.UTC)
	if err != nil {
		t.Fatalf("SaveMeal failed: %v", err)
	}

	item := meals.entries[entry.ID].Items[0]
	if item.CaloriesCalculated != nil {
		t.Errorf("calories = %v, want unset when the catalog value is unknown", item.CaloriesCalculated)
	}
	if item.ProteinCalculated == nil || *item.ProteinCalculated != 18.0 {
		t.Errorf("protein = %v, want 18", item.ProteinCalculated)
	}
}

func TestSaveMealRejectsUnknownFood(t *testing.T) {
	service, meals, _ := newNutritionFixture()

	_, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealSnack,
		Items: []MealItemInput{
			{FoodName: "mystery shake", AmountGrams: 300},
		},
	}, time.UTC)
	if !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
	if len(meals.entries) != 0 {
		t.Error("entry must not be persisted when an item fails to resolve")
	}
}

func TestSaveMealRejectsInvalidMealType(t *testing.T) {
	service, _, _ := newNutritionFixture()

	_, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: "brunch",
	}, time.UTC)
	if !errors.Is(err, ErrInvalidMealType) {
		t.Errorf("err = %v, want ErrInvalidMealType", err)
	}
}

func TestSaveMealRejectsNonPositiveAmount(t *testing.T) {
	service, _, foods := newNutritionFixture()
	foods.byNormalizedName["oats"] = models.FoodItem{ID: 3, Name: "Oats", ProteinPer100g: 13.5}

	_, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealBreakfast,
		Items: []MealItemInput{
			{FoodName: "Oats", AmountGrams: 0},
		},
	}, time.UTC)
	if !errors.Is(err, ErrInvalidFoodAmount) {
		t.Errorf("err = %v, want ErrInvalidFoodAmount", err)
	}
}

func TestSaveMealUpdateReplacesItems(t *testing.T) {
	service, meals, foods := newNutritionFixture()
	foods.byNormalizedName["oats"] = models.FoodItem{ID: 3, Name: "Oats", ProteinPer100g: 13.5}
	foods.byNormalizedName["paneer"] = models.FoodItem{ID: 4, Name: "Paneer", ProteinPer100g: 18.0}

	entry, err := service.SaveMeal(1, 0, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealBreakfast,
		Items:    []MealItemInput{{FoodName: "Oats", AmountGrams: 100}},
	}, time.UTC)
	if err != nil {
		t.Fatalf("initial SaveMeal failed: %v", err)
	}

	updated, err := service.SaveMeal(1, entry.ID, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealBreakfast,
		Items:    []MealItemInput{{FoodName: "Paneer", AmountGrams: 50}},
	}, time.UTC)
	if err != nil {
		t.Fatalf("update SaveMeal failed: %v", err)
	}
	if updated.ID != entry.ID {
		t.Errorf("update created a new entry: %d -> %d", entry.ID, updated.ID)
	}

	items := meals.entries[entry.ID].Items
	if len(items) != 1 || items[0].FoodItemID != 4 {
		t.Errorf("items = %+v, want the replacement item only", items)
	}
}

func TestSaveMealUpdateUnknownEntry(t *testing.T) {
	service, _, _ := newNutritionFixture()

	_, err := service.SaveMeal(1, 99, MealEntryInput{
		Date:     day("2026-03-01"),
		MealType: models.MealLunch,
	}, time.UTC)
	if !errors.Is(err, ErrMealNotFound) {
		t.Errorf("err = %v, want ErrMealNotFound", err)
	}
}

func TestDailyTotals(t *testing.T) {
	service, meals, _ := newNutritionFixture()
	meals.entries[1] = models.MealEntry{
		ID: 1, UserID: 1, Date: day("2026-03-01"),
		Items: []models.MealItem{{ProteinCalculated: floatPtr(46.5), CaloriesCalculated: floatPtr(250)}},
	}
	meals.entries[2] = models.MealEntry{
		ID: 2, UserID: 1, Date: day("2026-03-01"),
		Items: []models.MealItem{{ProteinCalculated: floatPtr(10.0)}},
	}
	meals.entries[3] = models.MealEntry{
		ID: 3, UserID: 1, Date: day("2026-03-02"),
		Items: []models.MealItem{{ProteinCalculated: floatPtr(99.0)}},
	}

	protein, calories, err := service.DailyTotals(1, day("2026-03-01"), time.UTC)
	if err != nil {
		t.Fatalf("DailyTotals failed: %v", err)
	}
	if protein != 56.5 {
		t.Errorf("protein = %v, want 56.5 (other days excluded)", protein)
	}
	if calories != 250 {
		t.Errorf("calories = %v, want 250", calories)
	}
}

func TestDeleteMealUnknownEntry(t *testing.T) {
	service, _, _ := newNutritionFixture()
	if err := service.DeleteMeal(1, 42); !errors.Is(err, ErrMealNotFound) {
		t.Errorf("err = %v, want ErrMealNotFound", err)
	}
}
