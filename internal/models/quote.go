package models

import "time"

type Quote struct {
	ID        uint   `gorm:"primaryKey"`
	Text      string `gorm:"uniqueIndex;not null"`
	Author    string
	Approved  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// QuoteDisplayLog records which quote was shown on a given date, one row per
// date. Bookkeeping only; failures to write it never surface to the user.
type QuoteDisplayLog struct {
	ID      uint      `gorm:"primaryKey"`
	Date    time.Time `gorm:"type:date;uniqueIndex;not null"`
	QuoteID uint      `gorm:"not null"`
	ShownAt time.Time
}
