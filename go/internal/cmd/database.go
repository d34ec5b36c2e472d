package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/pelada/go/internal/dbconfig"
	"github.com/rs/zerolog/log"
)

func setupDatabase(ctx context.Context) (*sql.DB, error) {
	cfg := dbconfig.NewConfigFromEnv()

	database, err := cfg.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Redacted(), err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("connected to database")
	return database, nil
}
