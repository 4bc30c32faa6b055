package models

import "time"

// WorkoutSession groups the exercises performed on one date. StartTime and
// EndTime are "HH:MM" time-of-day strings; DurationMinutes is derived from
// them on save and is nil when either endpoint is missing.
type WorkoutSession struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index:idx_workout_user_date"`
	Date            time.Time `gorm:"type:date;not null;index:idx_workout_user_date"`
	StartTime       string
	EndTime         string
	DurationMinutes *int
	Location        string
	Notes           string
	Exercises       []WorkoutExercise `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// WorkoutExercise is one exercise within a session. TargetReps is free text
// ("8-12", "AMRAP"); RepsPerformed is the numeric count used for volume math.
type WorkoutExercise struct {
	ID               uint `gorm:"primaryKey"`
	WorkoutSessionID uint `gorm:"not null;index"`
	ExerciseID       uint `gorm:"not null"`
	Exercise         Exercise
	Position         int `gorm:"not null;default:0"`
	Sets             int `gorm:"not null;default:1"`
	TargetReps       string
	RepsPerformed    *int
	WeightKg         *float64
	RestSeconds      *int
	Notes            string
}
