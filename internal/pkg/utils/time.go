package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/exceptions"
)

// timeLabelPattern is the only shape the slot catalog produces: "HH:MM AM|PM".
var timeLabelPattern = regexp.MustCompile(`^(\d{2}):(\d{2}) (AM|PM)$`)

// CombineDayAndLabel combines a calendar day with a time-of-day label into one
// UTC instant. The result depends only on the two inputs, never on the local
// timezone, so a server rebuilding the instant from the same pair lands on the
// exact same point in time.
func CombineDayAndLabel(day time.Time, label string) (time.Time, error) {
	matches := timeLabelPattern.FindStringSubmatch(label)
	if matches == nil {
		return time.Time{}, exceptions.ErrMalformedTimeLabel(nil, label)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	meridiem := matches[3]

	if hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, exceptions.ErrMalformedTimeLabel(fmt.Errorf("hour or minute out of range"), label)
	}

	// 12-hour to 24-hour: 12 AM is midnight, 12 PM stays noon.
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

// SessionEnd returns the end instant of a session starting at start.
func SessionEnd(start time.Time) time.Time {
	return start.Add(constvars.BookingSessionDurationMinutes * time.Minute)
}

// FormatTimeLabel is the display inverse of CombineDayAndLabel for the
// time-of-day part.
func FormatTimeLabel(instant time.Time) string {
	return instant.UTC().Format(constvars.BookingTimeLabelLayout)
}

// DayOf strips the time-of-day part, leaving the UTC calendar day.
func DayOf(instant time.Time) time.Time {
	utc := instant.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
