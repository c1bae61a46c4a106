package db

import (
	"context"
	"time"

	"github.com/terraincognita07/exercisetracker/internal/models"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) Create(ctx context.Context, exercise *models.Exercise) error {
	return classifyWriteError(repo.database.WithContext(ctx).Create(exercise).Error)
}

func (repo *ExerciseRepository) ListByUserRange(ctx context.Context, userID string, fromStart *time.Time, toEnd *time.Time, limit int) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	query := repo.database.WithContext(ctx).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", fromStart.UTC())
	}
	if toEnd != nil {
		query = query.Where("date < ?", toEnd.UTC())
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Order("date ASC, created_at ASC, id ASC").Find(&exercises).Error
	return exercises, err
}
