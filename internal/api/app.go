package api

import (
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const requestLogFormat = "${method} ${path} -${ip}\n"

type AppOptions struct {
	CORSAllowOrigins string
	RequestLog       io.Writer
}

func NewApp(handler *Handler, options AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Exercise Tracker",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	if options.RequestLog != nil {
		app.Use(logger.New(logger.Config{
			Format: requestLogFormat,
			Output: options.RequestLog,
		}))
	}
	app.Use(cors.New(cors.Config{AllowOrigins: corsOrigins(options.CORSAllowOrigins)}))
	app.Use(compress.New())

	app.Static("/public", filepath.Join(handler.webDir, "public"))
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func corsOrigins(raw string) string {
	if raw == "" {
		return "*"
	}
	return raw
}
