package services

import (
	"errors"
	"strings"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/models"
)

var (
	ErrStudySessionNotFound  = errors.New("study session not found")
	ErrInvalidActivityType   = errors.New("invalid activity type")
	ErrInternshipLogNotFound = errors.New("internship log not found")
	ErrInvalidInternshipLog  = errors.New("internship log needs a title and non-negative hours")
)

type StudyRepository interface {
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.StudySession, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.StudySession, error)
	FindByIDForUser(sessionID uint, userID uint) (models.StudySession, bool, error)
	Create(session *models.StudySession) error
	Save(session *models.StudySession) error
	DeleteByIDForUser(sessionID uint, userID uint) (bool, error)
}

type InternshipRepository interface {
	ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.InternshipLog, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.InternshipLog, error)
	Create(entry *models.InternshipLog) error
	DeleteByIDForUser(logID uint, userID uint) (bool, error)
}

type StudySessionInput struct {
	Date         time.Time
	StartTime    string
	EndTime      string
	ActivityType string
	Notes        string
}

type InternshipLogInput struct {
	Date        time.Time
	Hours       float64
	TaskTitle   string
	Description string
	Billable    bool
}

type StudyService struct {
	studies     StudyRepository
	internships InternshipRepository
}

func NewStudyService(studies StudyRepository, internships InternshipRepository) *StudyService {
	return &StudyService{
		studies:     studies,
		internships: internships,
	}
}

// SaveSession creates or updates a study session, rederiving DurationHours
// from the time-of-day fields on every save.
func (service *StudyService) SaveSession(userID uint, sessionID uint, payload StudySessionInput, location *time.Location) (models.StudySession, error) {
	if !models.ValidActivityType(payload.ActivityType) {
		return models.StudySession{}, ErrInvalidActivityType
	}

	session := models.StudySession{UserID: userID}
	if sessionID != 0 {
		existing, found, err := service.studies.FindByIDForUser(sessionID, userID)
		if err != nil {
			return models.StudySession{}, err
		}
		if !found {
			return models.StudySession{}, ErrStudySessionNotFound
		}
		session = existing
	}

	session.Date = DateAtLocation(payload.Date, location)
	session.StartTime = payload.StartTime
	session.EndTime = payload.EndTime
	session.DurationHours = StudyDurationHours(payload.StartTime, payload.EndTime)
	session.ActivityType = payload.ActivityType
	session.Notes = payload.Notes

	if session.ID == 0 {
		if err := service.studies.Create(&session); err != nil {
			return models.StudySession{}, err
		}
		return session, nil
	}
	if err := service.studies.Save(&session); err != nil {
		return models.StudySession{}, err
	}
	return session, nil
}

func (service *StudyService) FetchSessionsForDate(userID uint, day time.Time, location *time.Location) ([]models.StudySession, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.studies.ListByUserDayRange(userID, dayStart, dayEnd)
}

func (service *StudyService) DeleteSession(userID uint, sessionID uint) error {
	deleted, err := service.studies.DeleteByIDForUser(sessionID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudySessionNotFound
	}
	return nil
}

func (service *StudyService) AddInternshipLog(userID uint, payload InternshipLogInput, location *time.Location) (models.InternshipLog, error) {
	if strings.TrimSpace(payload.TaskTitle) == "" || payload.Hours < 0 {
		return models.InternshipLog{}, ErrInvalidInternshipLog
	}
	entry := models.InternshipLog{
		UserID:      userID,
		Date:        DateAtLocation(payload.Date, location),
		Hours:       payload.Hours,
		TaskTitle:   strings.TrimSpace(payload.TaskTitle),
		Description: payload.Description,
		Billable:    payload.Billable,
	}
	if err := service.internships.Create(&entry); err != nil {
		return models.InternshipLog{}, err
	}
	return entry, nil
}

func (service *StudyService) FetchInternshipLogsForDate(userID uint, day time.Time, location *time.Location) ([]models.InternshipLog, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.internships.ListByUserDayRange(userID, dayStart, dayEnd)
}

func (service *StudyService) DeleteInternshipLog(userID uint, logID uint) error {
	deleted, err := service.internships.DeleteByIDForUser(logID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInternshipLogNotFound
	}
	return nil
}

// DailyHours returns the day's study-hour and internship-hour totals.
func (service *StudyService) DailyHours(userID uint, day time.Time, location *time.Location) (float64, float64, error) {
	dayStart, dayEnd := DayRange(day, location)
	sessions, err := service.studies.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return 0, 0, err
	}
	logs, err := service.internships.ListByUserDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return 0, 0, err
	}
	return StudyHoursTotal(sessions), InternshipHoursTotal(logs), nil
}
