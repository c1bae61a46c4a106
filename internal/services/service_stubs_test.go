package services

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/exercisetracker/internal/models"
)

var errStubDuplicate = errors.New("stub duplicate key")

type stubUserRepo struct {
	byUsername map[string]models.User
	byID       map[string]models.User
	listed     []models.User
	findErr    error
	createErr  error
	listErr    error
	created    []models.User
}

func (stub *stubUserRepo) FindByUsername(_ context.Context, username string) (models.User, bool, error) {
	if stub.findErr != nil {
		return models.User{}, false, stub.findErr
	}
	user, ok := stub.byUsername[username]
	return user, ok, nil
}

func (stub *stubUserRepo) FindByID(_ context.Context, userID string) (models.User, bool, error) {
	if stub.findErr != nil {
		return models.User{}, false, stub.findErr
	}
	user, ok := stub.byID[userID]
	return user, ok, nil
}

func (stub *stubUserRepo) Create(_ context.Context, user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = "generated-id"
	stub.created = append(stub.created, *user)
	return nil
}

func (stub *stubUserRepo) List(context.Context) ([]models.User, error) {
	return stub.listed, stub.listErr
}

func (stub *stubUserRepo) IsDuplicateKey(err error) bool {
	return errors.Is(err, errStubDuplicate)
}

type listCall struct {
	userID    string
	fromStart *time.Time
	toEnd     *time.Time
	limit     int
}

type stubExerciseRepo struct {
	created   []models.Exercise
	createErr error
	listed    []models.Exercise
	listErr   error
	calls     []listCall
}

func (stub *stubExerciseRepo) Create(_ context.Context, exercise *models.Exercise) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	exercise.ID = "exercise-id"
	stub.created = append(stub.created, *exercise)
	return nil
}

func (stub *stubExerciseRepo) ListByUserRange(_ context.Context, userID string, fromStart *time.Time, toEnd *time.Time, limit int) ([]models.Exercise, error) {
	stub.calls = append(stub.calls, listCall{userID: userID, fromStart: fromStart, toEnd: toEnd, limit: limit})
	return stub.listed, stub.listErr
}
