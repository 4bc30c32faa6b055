package services

import (
	"math"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [start, end) interval covering one calendar
// day in the given location.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekRange returns the trailing seven-day window ending on the given day,
// inclusive of it: [day-6, day+1).
func WeekRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	dayStart, dayEnd := DayRange(value, location)
	return dayStart.AddDate(0, 0, -6), dayEnd
}

// SameCalendarDay reports whether two dates fall on the same calendar day in
// the given location.
func SameCalendarDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}

// DaysBetween returns the number of whole calendar days from a to b
// (positive when b is later). Rounding absorbs DST transitions, where a
// calendar day spans 23 or 25 wall-clock hours.
func DaysBetween(a time.Time, b time.Time, location *time.Location) int {
	dayA := DateAtLocation(a, location)
	dayB := DateAtLocation(b, location)
	return int(math.Round(dayB.Sub(dayA).Hours() / 24))
}
