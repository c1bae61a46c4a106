package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var ErrPostgresSourceMissing = errors.New("postgres requires a database url or a secret name")

type PostgresOptions struct {
	URL        string
	SecretName string
	SSLMode    string
}

func OpenPostgres(ctx context.Context, options PostgresOptions, secrets SecretProvider, logger *zerolog.Logger) (*gorm.DB, error) {
	dsn, err := ResolvePostgresDSN(ctx, options, secrets)
	if err != nil {
		return nil, err
	}

	database, err := gorm.Open(postgres.Open(dsn), gormConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := Ping(pingCtx, database); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}

	return database, nil
}

func ResolvePostgresDSN(ctx context.Context, options PostgresOptions, secrets SecretProvider) (string, error) {
	if raw := strings.TrimSpace(options.URL); raw != "" {
		return raw, nil
	}

	secretName := strings.TrimSpace(options.SecretName)
	if secretName == "" || secrets == nil {
		return "", ErrPostgresSourceMissing
	}

	secret, err := secrets.GetSecret(ctx, secretName)
	if err != nil {
		return "", fmt.Errorf("load database secret: %w", err)
	}

	sslMode := strings.TrimSpace(options.SSLMode)
	if sslMode == "" {
		sslMode = "require"
	}

	dsn := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(secret.Username, secret.Password),
		Host:     net.JoinHostPort(secret.Host, secret.Port),
		Path:     "/" + secret.Database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return dsn.String(), nil
}
