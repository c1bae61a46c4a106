package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const secretCacheTTL = 5 * time.Minute

type Options struct {
	Driver     string
	SQLitePath string
	Postgres   PostgresOptions
	AWSRegion  string
}

func Open(ctx context.Context, options Options, logger *zerolog.Logger) (*gorm.DB, error) {
	switch options.Driver {
	case "", DriverSQLite:
		return OpenSQLite(options.SQLitePath, logger)
	case DriverPostgres:
		var secrets SecretProvider
		if options.Postgres.SecretName != "" {
			secrets = NewAWSSecretProvider(options.AWSRegion, secretCacheTTL)
		}
		return OpenPostgres(ctx, options.Postgres, secrets, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", options.Driver)
	}
}

func Ping(ctx context.Context, database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
