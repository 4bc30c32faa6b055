package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrEmptyQuoteText    = errors.New("quote text is required")
	ErrQuoteCreateFailed = errors.New("create quote failed")
)

type QuoteRepository interface {
	ListApproved() ([]models.Quote, error)
	Create(quote *models.Quote) error
	FindDisplayLogByDayRange(dayStart time.Time, dayEnd time.Time) (models.QuoteDisplayLog, bool, error)
	CreateDisplayLogIfAbsent(entry *models.QuoteDisplayLog) (bool, error)
}

type QuoteService struct {
	quotes QuoteRepository
}

func NewQuoteService(quotes QuoteRepository) *QuoteService {
	return &QuoteService{quotes: quotes}
}

// QuoteOfTheDay picks an approved quote for the date by rotating through the
// approved list on the day number, so repeated calls on the same day agree.
// Returns found=false when no approved quotes exist.
func (service *QuoteService) QuoteOfTheDay(day time.Time, location *time.Location) (models.Quote, bool, error) {
	quotes, err := service.quotes.ListApproved()
	if err != nil {
		return models.Quote{}, false, err
	}
	if len(quotes) == 0 {
		return models.Quote{}, false, nil
	}

	dayStart := DateAtLocation(day, location)
	dayNumber := int(dayStart.Unix() / (24 * 60 * 60))
	if dayNumber < 0 {
		dayNumber = -dayNumber
	}
	quote := quotes[dayNumber%len(quotes)]

	service.recordDisplay(dayStart, quote)
	return quote, true, nil
}

// recordDisplay keeps the one-quote-per-day bookkeeping row. Best effort:
// failures are logged and never surface to the caller.
func (service *QuoteService) recordDisplay(dayStart time.Time, quote models.Quote) {
	entry := models.QuoteDisplayLog{
		Date:    dayStart,
		QuoteID: quote.ID,
		ShownAt: time.Now(),
	}
	if _, err := service.quotes.CreateDisplayLogIfAbsent(&entry); err != nil {
		log.Printf("event=quote_display_log_failed date=%s quote_id=%d err=%v", dayStart.Format("2006-01-02"), quote.ID, err)
	}
}

func (service *QuoteService) AddQuote(text string, author string) (models.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Quote{}, ErrEmptyQuoteText
	}
	quote := models.Quote{
		Text:     text,
		Author:   strings.TrimSpace(author),
		Approved: true,
	}
	if err := service.quotes.Create(&quote); err != nil {
		return models.Quote{}, ErrQuoteCreateFailed
	}
	return quote, nil
}
