package services

import (
	"strings"
	"time"
)

type DateRange struct {
	From time.Time
	To   time.Time
}

func (dateRange DateRange) Bounds() (time.Time, time.Time) {
	_, toEnd := DayRange(dateRange.To, dateRange.To.Location())
	return dateRange.From, toEnd
}

func epochDay(location *time.Location) time.Time {
	return time.Date(1970, time.January, 1, 0, 0, 0, 0, location)
}

// ParseLogDateRange returns nil when neither bound is given. A missing from
// starts at 1970-01-01 and a missing to ends today.
func ParseLogDateRange(rawFrom string, rawTo string, now time.Time, location *time.Location) (*DateRange, error) {
	if location == nil {
		location = time.UTC
	}
	fromRaw := strings.TrimSpace(rawFrom)
	toRaw := strings.TrimSpace(rawTo)
	if fromRaw == "" && toRaw == "" {
		return nil, nil
	}

	from := epochDay(location)
	if fromRaw != "" {
		parsed, ok := ParseCalendarDate(fromRaw, location)
		if !ok {
			return nil, ErrFromDateInvalid
		}
		from = parsed
	}

	to := DateAtLocation(now, location)
	if toRaw != "" {
		parsed, ok := ParseCalendarDate(toRaw, location)
		if !ok {
			return nil, ErrToDateInvalid
		}
		to = parsed
	}

	return &DateRange{From: from, To: to}, nil
}
