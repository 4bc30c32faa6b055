package models

import "time"

type JournalEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;uniqueIndex:uidx_journal_user_date"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:uidx_journal_user_date"`
	MorningNote string
	EveningNote string
	GratefulFor string
	Highlights  string
	Mood        string
	QuoteID     *uint
	Quote       *Quote
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
