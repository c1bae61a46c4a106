// Package config reads the service settings from EXERCISE_* environment
// variables, with an optional .env file loaded first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "EXERCISE_"

var (
	ErrInvalidPort         = errors.New("port must be a number between 1 and 65535")
	ErrPostgresUnspecified = errors.New("postgres driver requires EXERCISE_DATABASE_URL or EXERCISE_DB_SECRET_NAME")
)

type Config struct {
	Port             string `koanf:"port" validate:"required,numeric"`
	Env              string `koanf:"env" validate:"required"`
	Timezone         string `koanf:"tz" validate:"required"`
	DBDriver         string `koanf:"db_driver" validate:"oneof=sqlite postgres"`
	DBPath           string `koanf:"db_path" validate:"required_if=DBDriver sqlite"`
	DatabaseURL      string `koanf:"database_url"`
	DBSecretName     string `koanf:"db_secret_name"`
	DBSSLMode        string `koanf:"db_ssl_mode"`
	AWSRegion        string `koanf:"aws_region"`
	LogLevel         string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat        string `koanf:"log_format" validate:"oneof=console json"`
	CORSAllowOrigins string `koanf:"cors_allow_origins"`
	WebDir           string `koanf:"web_dir" validate:"required"`

	location *time.Location
}

func Default() Config {
	return Config{
		Port:             "3000",
		Env:              "development",
		Timezone:         "UTC",
		DBDriver:         "sqlite",
		DBPath:           "data/exercise.db",
		DBSSLMode:        "require",
		AWSRegion:        "us-east-1",
		LogLevel:         "info",
		LogFormat:        "console",
		CORSAllowOrigins: "*",
		WebDir:           "web",
	}
}

// Load applies non-empty EXERCISE_* variables over the defaults. PORT and TZ
// are honoured when their prefixed forms are unset.
func Load() (*Config, error) {
	cfg := Default()
	applyUnprefixedFallback(&cfg.Port, "PORT")
	applyUnprefixedFallback(&cfg.Timezone, "TZ")

	k := koanf.New(".")
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key string, value string) (string, interface{}) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), strings.TrimSpace(value)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyUnprefixedFallback(target *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	}
}

func (cfg *Config) validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}

	if cfg.DBDriver == "postgres" && strings.TrimSpace(cfg.DatabaseURL) == "" && strings.TrimSpace(cfg.DBSecretName) == "" {
		return ErrPostgresUnspecified
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.location = location
	return nil
}

func (cfg *Config) Location() *time.Location {
	if cfg.location == nil {
		return time.UTC
	}
	return cfg.location
}

func (cfg *Config) CORSOrigins() string {
	parts := strings.Split(cfg.CORSAllowOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}
