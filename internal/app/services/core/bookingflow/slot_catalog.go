package bookingflow

import (
	"time"

	"fitbook-service/internal/pkg/constvars"
	"fitbook-service/internal/pkg/utils"
)

// timeOfDayOptions is the fixed menu of session start labels. Starts are
// hourly from 09:00 to 18:00 so the last 30-minute session ends inside the
// business day.
var timeOfDayOptions = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

// TimeOfDayOptions returns the catalog labels in display order. Callers get a
// fresh slice so the catalog cannot be mutated.
func TimeOfDayOptions() []string {
	options := make([]string, len(timeOfDayOptions))
	copy(options, timeOfDayOptions)
	return options
}

// CandidateDays lists the UTC calendar days a session can be booked on,
// starting from the day containing from. The count is clamped to the
// platform's booking horizon and never drops below a single day.
func CandidateDays(from time.Time, count int) []time.Time {
	if count < 1 {
		count = 1
	}
	if count > constvars.BookingCandidateDayCount {
		count = constvars.BookingCandidateDayCount
	}

	first := utils.DayOf(from)
	days := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}
