package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/tradeledger/internal/config"
	"github.com/rpggio/tradeledger/internal/store"
)

// OpenStore connects and migrates the configured database. Driver "none"
// yields a store that is always unavailable.
func OpenStore(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*store.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := store.Options{Driver: cfg.Driver, DSN: cfg.DSN}
	switch cfg.Driver {
	case "none":
		logger.Warn("running without a database", "degraded_reads", cfg.DegradedReads)
		return store.Unavailable(), nil
	case "sqlite":
		if err := ensureDBDir(cfg.Path); err != nil {
			return nil, fmt.Errorf("prepare database path: %w", err)
		}
		opts.DSN = cfg.Path
	}

	db, err := store.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
