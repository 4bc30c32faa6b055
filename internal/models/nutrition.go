package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
	MealOther     = "other"
)

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack, MealOther:
		return true
	}
	return false
}

type MealEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_meal_user_date"`
	Date      time.Time `gorm:"type:date;not null;index:idx_meal_user_date"`
	Time      string
	MealType  string     `gorm:"not null;default:other"`
	Notes     string
	Items     []MealItem `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// MealItem carries the macro contributions derived at write time from the
// food's per-100g values. A nil calculated field means the catalog value was
// unset, not that the contribution is zero.
type MealItem struct {
	ID                 uint `gorm:"primaryKey"`
	MealEntryID        uint `gorm:"not null;index"`
	FoodItemID         uint `gorm:"not null"`
	FoodItem           FoodItem
	AmountGrams        float64 `gorm:"not null"`
	Unit               string
	ProteinCalculated  *float64
	CaloriesCalculated *float64
}
