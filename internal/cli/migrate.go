package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/exercisetracker/internal/db"
)

func RunMigrateCommand(ctx context.Context, options db.Options, logger *zerolog.Logger, out io.Writer) error {
	database, err := db.Open(ctx, options, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		_ = db.Close(database)
	}()

	pending, err := db.PendingMigrations(database)
	if err != nil {
		return fmt.Errorf("check pending migrations: %w", err)
	}
	if len(pending) > 0 {
		return fmt.Errorf("migrations still pending: %v", pending)
	}

	records, err := db.AppliedMigrations(database)
	if err != nil {
		return fmt.Errorf("load migration history: %w", err)
	}

	fmt.Fprintln(out, "✅ Schema up to date")
	for _, record := range records {
		fmt.Fprintf(out, "%s  %s  (applied %s)\n", record.Version, record.Name, record.AppliedAt.UTC().Format("2006-01-02 15:04:05"))
	}
	return nil
}
