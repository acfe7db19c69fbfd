package infra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/whatsclone/whatsclone/internal/config"
	"github.com/whatsclone/whatsclone/internal/preferences"
)

// Backends holds every external store the service talks to. DB and Cache are
// nil when their URL is not configured.
type Backends struct {
	DB          *pgxpool.Pool
	Cache       *redis.Client
	Preferences preferences.Store

	closers []func() error
}

// Connect opens the configured backends and the preference store.
func Connect(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Backends, error) {
	b := &Backends{}

	if cfg.DatabaseURL != "" {
		db, err := NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.DB = db
		b.closers = append(b.closers, func() error { db.Close(); return nil })
	} else {
		logger.Warn("DATABASE_URL not set, remote points are kept in memory")
	}

	if cfg.RedisURL != "" {
		cache, err := NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Cache = cache
		b.closers = append(b.closers, cache.Close)
	}

	switch cfg.PreferencesBackend {
	case config.PreferencesSQLite:
		store, err := preferences.OpenSQLite(cfg.PreferencesPath, preferences.DefaultName)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Preferences = store
		b.closers = append(b.closers, store.Close)
	case config.PreferencesRedis:
		if b.Cache == nil {
			_ = b.Close()
			return nil, fmt.Errorf("redis preferences backend requires REDIS_URL")
		}
		b.Preferences = preferences.NewRedisStore(b.Cache, preferences.DefaultName)
	default:
		b.Preferences = preferences.NewMemoryStore()
	}

	return b, nil
}

// Close releases backends in reverse order of opening.
func (b *Backends) Close() error {
	if b == nil {
		return nil
	}
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}
