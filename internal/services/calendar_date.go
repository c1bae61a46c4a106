package services

import (
	"strings"
	"time"
)

const CalendarDayLayout = "Mon Jan 02 2006"

// Layouts that carry their own offset; the instant is moved into the service
// location before the day is taken.
var zonedCalendarLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
}

var localCalendarLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func ParseCalendarDate(raw string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.UTC
	}
	value := strings.Join(strings.Fields(raw), " ")
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedCalendarLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return DateAtLocation(parsed, location), true
		}
	}
	for _, layout := range localCalendarLayouts {
		if parsed, err := time.ParseInLocation(layout, value, location); err == nil {
			return DateAtLocation(parsed, location), true
		}
	}
	return time.Time{}, false
}

func FormatCalendarDay(value time.Time, location *time.Location) string {
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(CalendarDayLayout)
}
