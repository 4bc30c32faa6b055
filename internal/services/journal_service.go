package services

import (
	"errors"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrJournalLoadFailed = errors.New("load journal entry failed")
	ErrJournalSaveFailed = errors.New("save journal entry failed")
)

type JournalRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.JournalEntry, bool, error)
	CreateIfAbsent(entry *models.JournalEntry) (bool, error)
	Save(entry *models.JournalEntry) error
}

type JournalEntryInput struct {
	MorningNote string
	EveningNote string
	GratefulFor string
	Highlights  string
	Mood        string
	QuoteID     *uint
}

type JournalService struct {
	journal JournalRepository
}

func NewJournalService(journal JournalRepository) *JournalService {
	return &JournalService{journal: journal}
}

// GetOrCreateForDate returns the day's journal entry, lazily creating an
// empty row the first time the day is viewed. The conflict-tolerant insert
// makes concurrent first views converge on one row.
func (service *JournalService) GetOrCreateForDate(userID uint, day time.Time, location *time.Location) (models.JournalEntry, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.journal.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.JournalEntry{}, ErrJournalLoadFailed
	}
	if found {
		return entry, nil
	}

	entry = models.JournalEntry{
		UserID: userID,
		Date:   dayStart,
	}
	created, err := service.journal.CreateIfAbsent(&entry)
	if err != nil {
		return models.JournalEntry{}, ErrJournalSaveFailed
	}
	if created {
		return entry, nil
	}

	// Lost the insert race; the winner's row is authoritative.
	entry, found, err = service.journal.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil || !found {
		return models.JournalEntry{}, ErrJournalLoadFailed
	}
	return entry, nil
}

// SaveForDate updates the day's reflection fields, creating the row first if
// the day was never viewed.
func (service *JournalService) SaveForDate(userID uint, day time.Time, payload JournalEntryInput, location *time.Location) (models.JournalEntry, error) {
	entry, err := service.GetOrCreateForDate(userID, day, location)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry.MorningNote = payload.MorningNote
	entry.EveningNote = payload.EveningNote
	entry.GratefulFor = payload.GratefulFor
	entry.Highlights = payload.Highlights
	entry.Mood = payload.Mood
	if payload.QuoteID != nil {
		entry.QuoteID = payload.QuoteID
	}

	if err := service.journal.Save(&entry); err != nil {
		return models.JournalEntry{}, ErrJournalSaveFailed
	}
	return entry, nil
}
