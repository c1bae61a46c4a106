package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input := createUserInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, errInvalidPayload)
	}

	user, err := handler.users.Register(c.UserContext(), input.Username)
	if err != nil {
		return handler.writeServiceError(c, err, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(userResponse{ID: user.ID, Username: user.Username})
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.users.List(c.UserContext())
	if err != nil {
		return handler.writeServiceError(c, err, "failed to fetch users")
	}

	response := make([]userResponse, 0, len(users))
	for _, user := range users {
		response = append(response, userResponse{ID: user.ID, Username: user.Username})
	}
	return c.JSON(response)
}
