package services

import (
	"context"

	"github.com/terraincognita07/exercisetracker/internal/models"
)

type ExerciseUserLookup interface {
	FindByID(ctx context.Context, userID string) (models.User, bool, error)
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *models.Exercise) error
}

type ExerciseService struct {
	users     ExerciseUserLookup
	exercises ExerciseRepository
}

func NewExerciseService(users ExerciseUserLookup, exercises ExerciseRepository) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
	}
}

func (service *ExerciseService) AddExercise(ctx context.Context, record ExerciseRecord) (models.User, models.Exercise, error) {
	user, err := lookupUser(ctx, service.users, record.UserID)
	if err != nil {
		return models.User{}, models.Exercise{}, err
	}

	exercise := models.Exercise{
		UserID:      user.ID,
		Description: record.Description,
		Duration:    record.Duration,
		Date:        record.Date.UTC(),
	}
	if err := service.exercises.Create(ctx, &exercise); err != nil {
		return models.User{}, models.Exercise{}, StoreError(err)
	}
	return user, exercise, nil
}

func lookupUser(ctx context.Context, users ExerciseUserLookup, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrUserNotFound
	}
	user, exists, err := users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, StoreError(err)
	}
	if !exists {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
