package models

import "time"

// DailyReport is a regenerable cache of one day's snapshot, keyed by
// (user, date). Never a source of truth: rebuilding it from the log tables
// must always be possible.
type DailyReport struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_report_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_report_user_date"`
	Snapshot    []byte    `gorm:"type:blob"`
	ShareSlug   string    `gorm:"uniqueIndex"`
	GeneratedAt time.Time
}
