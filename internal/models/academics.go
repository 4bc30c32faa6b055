package models

import "time"

const (
	ActivityDSA        = "dsa"
	ActivityReading    = "reading"
	ActivityProject    = "project"
	ActivityInternship = "internship"
	ActivityCourse     = "course"
	ActivityOther      = "other"
)

func ValidActivityType(activityType string) bool {
	switch activityType {
	case ActivityDSA, ActivityReading, ActivityProject, ActivityInternship, ActivityCourse, ActivityOther:
		return true
	}
	return false
}

// StudySession mirrors WorkoutSession but expresses its derived duration in
// fractional hours rounded to two decimals.
type StudySession struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index:idx_study_user_date"`
	Date          time.Time `gorm:"type:date;not null;index:idx_study_user_date"`
	StartTime     string
	EndTime       string
	DurationHours *float64
	ActivityType  string `gorm:"not null;default:other"`
	Notes         string
	CreatedAt     time.Time
}

type InternshipLog struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_internship_user_date"`
	Date        time.Time `gorm:"type:date;not null;index:idx_internship_user_date"`
	Hours       float64   `gorm:"not null"`
	TaskTitle   string    `gorm:"not null"`
	Description string
	Billable    bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
