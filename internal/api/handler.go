package api

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/exercisetracker/internal/db"
	"github.com/terraincognita07/exercisetracker/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	logger    *zerolog.Logger
	location  *time.Location
	webDir    string
	now       func() time.Time
	users     *services.UserService
	exercises *services.ExerciseService
	logs      *services.LogService
}

func NewHandler(database *gorm.DB, logger *zerolog.Logger, location *time.Location, webDir string) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:        database,
		logger:    logger,
		location:  location,
		webDir:    webDir,
		now:       time.Now,
		users:     services.NewUserService(repositories.Users),
		exercises: services.NewExerciseService(repositories.Users, repositories.Exercises),
		logs:      services.NewLogService(repositories.Users, repositories.Exercises),
	}, nil
}
