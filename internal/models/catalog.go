package models

import "time"

// Catalog entities are shared reference data, looked up by name.
// Name matching is case-insensitive; storage keeps the original casing.

type Muscle struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

type Exercise struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"uniqueIndex;not null"`
	PrimaryMuscleID *uint
	PrimaryMuscle   *Muscle
	DefaultSets     *int
	DefaultReps     string
	Equipment       string
	CreatedAt       time.Time
}

type FoodItem struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"uniqueIndex;not null"`
	ServingSizeDesc string
	ProteinPer100g  float64 `gorm:"not null;default:0"`
	CaloriesPer100g *float64
	CarbsPer100g    *float64
	FatPer100g      *float64
	DefaultUnit     string
	CreatedAt       time.Time
}
