package services

import (
	"context"
	"strings"
	"time"

	"github.com/terraincognita07/exercisetracker/internal/models"
)

type LogExerciseRepository interface {
	ListByUserRange(ctx context.Context, userID string, fromStart *time.Time, toEnd *time.Time, limit int) ([]models.Exercise, error)
}

type LogQuery struct {
	Range *DateRange
	Limit int
}

type LogEntry struct {
	Description string
	Duration    int
	Date        time.Time
}

type LogResult struct {
	UserID   string
	Username string
	Count    int
	Log      []LogEntry
}

type LogService struct {
	users     ExerciseUserLookup
	exercises LogExerciseRepository
}

func NewLogService(users ExerciseUserLookup, exercises LogExerciseRepository) *LogService {
	return &LogService{
		users:     users,
		exercises: exercises,
	}
}

func (service *LogService) FetchLog(ctx context.Context, userID string, query LogQuery) (LogResult, error) {
	user, err := lookupUser(ctx, service.users, strings.TrimSpace(userID))
	if err != nil {
		return LogResult{}, err
	}

	var fromStart, toEnd *time.Time
	if query.Range != nil {
		from, to := query.Range.Bounds()
		fromStart, toEnd = &from, &to
	}

	exercises, err := service.exercises.ListByUserRange(ctx, user.ID, fromStart, toEnd, storeLimit(query.Limit))
	if err != nil {
		return LogResult{}, StoreError(err)
	}

	entries := make([]LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date,
		})
	}

	return LogResult{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(entries),
		Log:      entries,
	}, nil
}
