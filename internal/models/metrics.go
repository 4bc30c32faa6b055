package models

import "time"

// DailyMetrics is one row of manually entered scalars per (user, date),
// upserted rather than appended.
type DailyMetrics struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"not null;uniqueIndex:uidx_metrics_user_date"`
	Date              time.Time `gorm:"type:date;not null;uniqueIndex:uidx_metrics_user_date"`
	WaterML           int       `gorm:"not null;default:0"`
	SleepHours        *float64
	ScreenTimeMinutes int `gorm:"not null;default:0"`
	Steps             *int
	Mood              string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
