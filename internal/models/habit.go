package models

import "time"

// Habit holds denormalized streak state. CurrentStreak, BestStreak and
// LastDoneDate are a cache of the HabitLog history and can always be rebuilt
// from it; they are never edited directly.
type Habit struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;uniqueIndex:uidx_habit_user_name"`
	Name          string `gorm:"not null;uniqueIndex:uidx_habit_user_name"`
	CurrentStreak int    `gorm:"not null;default:0"`
	BestStreak    int    `gorm:"not null;default:0"`
	LastDoneDate  *time.Time `gorm:"type:date"`
	Active        bool       `gorm:"not null;default:true"`
	CreatedAt     time.Time
}

// HabitLog is one completion per (habit, date). The unique index makes
// duplicate same-day submissions safe under concurrent double-submit.
type HabitLog struct {
	ID        uint      `gorm:"primaryKey"`
	HabitID   uint      `gorm:"not null;uniqueIndex:uidx_habit_log_day"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_habit_log_day"`
	Notes     string
	CreatedAt time.Time
}
