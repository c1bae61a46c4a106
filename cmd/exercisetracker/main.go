package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/exercisetracker/internal/api"
	"github.com/terraincognita07/exercisetracker/internal/cli"
	"github.com/terraincognita07/exercisetracker/internal/config"
	"github.com/terraincognita07/exercisetracker/internal/db"
	"github.com/terraincognita07/exercisetracker/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config init failed: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:], cfg, log); err != nil {
			log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
		}
		return
	}

	if err := serve(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func runCommand(args []string, cfg *config.Config, log *zerolog.Logger) error {
	switch args[0] {
	case "migrate":
		return cli.RunMigrateCommand(context.Background(), databaseOptions(cfg), log, os.Stdout)
	default:
		return fmt.Errorf("unknown command %q (available: migrate)", args[0])
	}
}

func serve(cfg *config.Config, log *zerolog.Logger) error {
	location := cfg.Location()
	time.Local = location

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	database, err := db.Open(startupCtx, databaseOptions(cfg), log)
	cancelStartup()
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			log.Warn().Err(err).Msg("database close failed")
		}
	}()

	handler, err := api.NewHandler(database, log, location, cfg.WebDir)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := api.NewApp(handler, api.AppOptions{
		CORSAllowOrigins: cfg.CORSOrigins(),
		RequestLog:       log,
	})

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("db_driver", cfg.DBDriver).
		Str("tz", location.String()).
		Msg("exercise tracker listening")
	return app.Listen(":" + cfg.Port)
}

func databaseOptions(cfg *config.Config) db.Options {
	return db.Options{
		Driver:     cfg.DBDriver,
		SQLitePath: cfg.DBPath,
		Postgres: db.PostgresOptions{
			URL:        cfg.DatabaseURL,
			SecretName: cfg.DBSecretName,
			SSLMode:    cfg.DBSSLMode,
		},
		AWSRegion: cfg.AWSRegion,
	}
}
