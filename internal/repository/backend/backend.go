// Package backend opens the save store selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/freeeve/statecraft/internal/config"
	"github.com/freeeve/statecraft/internal/repository"
	"github.com/freeeve/statecraft/internal/repository/file"
	"github.com/freeeve/statecraft/internal/repository/postgres"
	redisrepo "github.com/freeeve/statecraft/internal/repository/redis"
	"github.com/freeeve/statecraft/internal/repository/sqlite"
)

// Open connects the backend named by cfg.SaveBackend. The Postgres schema
// is migrated on open.
func Open(ctx context.Context, cfg *config.Config) (repository.SaveStore, error) {
	switch cfg.SaveBackend {
	case config.BackendFile:
		s, err := file.Open(cfg.SaveDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendPostgres:
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return postgres.NewSaveRepo(db), nil
	case config.BackendRedis:
		c, err := redisrepo.NewClient(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown save backend %q", cfg.SaveBackend)
}
