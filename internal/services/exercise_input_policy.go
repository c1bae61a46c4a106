package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/exercisetracker/internal/models"
)

type ExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

type ExerciseRecord struct {
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

func NormalizeExerciseInput(input ExerciseInput, now time.Time, location *time.Location) (ExerciseRecord, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ExerciseRecord{}, ErrDescriptionRequired
	}

	duration, ok := parseLeadingInt(input.Duration)
	if !ok {
		return ExerciseRecord{}, ErrDurationNotNumber
	}
	if duration < models.MinExerciseDuration {
		return ExerciseRecord{}, ErrDurationNotPositive
	}

	date := DateAtLocation(now, location)
	if strings.TrimSpace(input.Date) != "" {
		parsed, ok := ParseCalendarDate(input.Date, location)
		if !ok {
			return ExerciseRecord{}, ErrDateInvalid
		}
		date = parsed
	}

	return ExerciseRecord{
		UserID:      strings.TrimSpace(input.UserID),
		Description: description,
		Duration:    duration,
		Date:        date,
	}, nil
}

// parseLeadingInt ignores anything after the leading digit run, so "30min" is
// 30. Out-of-range runs saturate.
func parseLeadingInt(raw string) (int, bool) {
	value := strings.TrimLeft(raw, " \t\r\n\v\f")

	end := 0
	if end < len(value) && (value[end] == '+' || value[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	parsed, err := strconv.Atoi(value[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return parsed, true
}
