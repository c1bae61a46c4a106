package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MinExerciseDuration = 1

// Exercise belongs to a user through UserID. Date holds the start of the
// calendar day the exercise was performed on, stored in UTC.
type Exercise struct {
	ID          string    `gorm:"primaryKey;type:text"`
	UserID      string    `gorm:"not null;index:idx_exercises_user_date"`
	Description string    `gorm:"not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"not null;index:idx_exercises_user_date"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (exercise *Exercise) BeforeCreate(*gorm.DB) error {
	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	return nil
}
