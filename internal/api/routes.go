package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/", handler.Index)

	users := app.Group("/api/users")
	users.Post("", handler.CreateUser)
	users.Get("", handler.ListUsers)
	users.Post("/:id/exercises", handler.AddExercise)
	users.Get("/:id/logs", handler.GetLogs)
}
