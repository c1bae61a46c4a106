package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/exercisetracker/internal/services"
)

func (handler *Handler) AddExercise(c *fiber.Ctx) error {
	input := exerciseInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidPayload)
	}

	record, err := services.NormalizeExerciseInput(services.ExerciseInput{
		UserID:      c.Params("id"),
		Description: input.Description,
		Duration:    input.Duration,
		Date:        input.Date,
	}, handler.now(), handler.location)
	if err != nil {
		return handler.writeServiceError(c, err, "failed to create exercise")
	}

	user, exercise, err := handler.exercises.AddExercise(c.UserContext(), record)
	if err != nil {
		return handler.writeServiceError(c, err, "failed to create exercise")
	}

	return c.Status(fiber.StatusCreated).JSON(exerciseResponse{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        services.FormatCalendarDay(exercise.Date, handler.location),
	})
}
