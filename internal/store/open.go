package store

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/tasklist/internal/config"
	"github.com/Makepad-fr/tasklist/internal/store/jsonstore"
	"github.com/Makepad-fr/tasklist/internal/store/redisstore"
	"github.com/Makepad-fr/tasklist/internal/store/sqlitestore"
)

// Open builds the slot selected by cfg.Backend.
func Open(ctx context.Context, cfg *config.Config) (Slot, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		s, err := jsonstore.New(config.ExpandHome(cfg.File.Path))
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlitestore.New(config.ExpandHome(cfg.SQLite.Path), cfg.SQLite.Key)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendRedis:
		s, err := redisstore.Dial(ctx, cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Key)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendMemory:
		return NewMemory(nil), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}
