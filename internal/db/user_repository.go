package db

import (
	"context"

	"github.com/terraincognita07/exercisetracker/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(ctx context.Context, userID string) (models.User, bool, error) {
	return repo.findOne(ctx, "id = ?", userID)
}

func (repo *UserRepository) FindByUsername(ctx context.Context, username string) (models.User, bool, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *UserRepository) findOne(ctx context.Context, query string, arg any) (models.User, bool, error) {
	var user models.User
	result := repo.database.WithContext(ctx).
		Where(query, arg).
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := repo.database.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&users).Error
	return users, err
}

func (repo *UserRepository) Create(ctx context.Context, user *models.User) error {
	return classifyWriteError(repo.database.WithContext(ctx).Create(user).Error)
}

func (repo *UserRepository) IsDuplicateKey(err error) bool {
	return IsUniqueViolation(err)
}
