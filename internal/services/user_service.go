package services

import (
	"context"

	"github.com/terraincognita07/exercisetracker/internal/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]models.User, error)
	IsDuplicateKey(err error) bool
}

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

func (service *UserService) Register(ctx context.Context, rawUsername string) (models.User, error) {
	username, err := NormalizeUsername(rawUsername)
	if err != nil {
		return models.User{}, err
	}

	if _, exists, err := service.users.FindByUsername(ctx, username); err != nil {
		return models.User{}, StoreError(err)
	} else if exists {
		return models.User{}, ErrUsernameTaken
	}

	user := models.User{Username: username}
	if err := service.users.Create(ctx, &user); err != nil {
		if service.users.IsDuplicateKey(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, StoreError(err)
	}
	return user, nil
}

func (service *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := service.users.List(ctx)
	if err != nil {
		return nil, StoreError(err)
	}
	return users, nil
}
