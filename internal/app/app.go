package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/drilathedev/virtual-view-estate/internal/config"
	"github.com/drilathedev/virtual-view-estate/internal/repositories"
	"github.com/drilathedev/virtual-view-estate/internal/utils"
)

const (
	maxRetries     = 5
	connectTimeout = 5 * time.Second
	initialBackoff = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Cache  *utils.Cache

	PropertyRepo repositories.PropertyRepository
	FeatureRepo  repositories.FeatureRepository
}

func NewApp(cfg *config.Config) (*App, error) {
	var (
		pool    *pgxpool.Pool
		err     error
		backoff = initialBackoff
	)

	for i := 1; i <= maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		pool, err = newDBPool(ctx, cfg.DBUrl)
		cancel()
		if err == nil {
			utils.Logger.Infof("connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxRetries, backoff,
		)

		if i == maxRetries {
			return nil, fmt.Errorf("unable to connect after %d attempts: %w", maxRetries, err)
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	if err := ensureSchema(context.Background(), pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("schema bootstrap: %w", err)
	}

	app := &App{
		Config:       cfg,
		Pool:         pool,
		Cache:        utils.NewCache(cfg.RedisAddr, cfg.RedisPass),
		PropertyRepo: repositories.NewPropertyRepository(pool),
		FeatureRepo:  repositories.NewFeatureRepository(pool),
	}

	if cfg.LDFlag_SeedDemoData {
		if err := SeedDemoData(context.Background(), app.PropertyRepo, app.FeatureRepo); err != nil {
			utils.Logger.WithError(err).Warn("demo seeding failed; continuing with whatever is in the store")
		}
	}

	return app, nil
}

func (a *App) Close() {
	if a.Cache != nil {
		if err := a.Cache.Close(); err != nil {
			utils.Logger.WithError(err).Warn("closing cache connection failed")
		}
	}
	if a.Pool != nil {
		a.Pool.Close()
		utils.Logger.Info("DB connection closed.")
	}
}

func newDBPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnIdleTime = 2 * time.Minute
	cfg.HealthCheckPeriod = 30 * time.Second
	return pgxpool.ConnectConfig(ctx, cfg)
}

// ensureSchema creates the two catalog tables if they do not exist yet. The
// deployment has no migration tooling; additive column changes ship as ALTERs
// run by hand.
func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS properties (
            id            UUID PRIMARY KEY,
            title         TEXT NOT NULL,
            location      TEXT NOT NULL,
            price         TEXT NOT NULL,
            beds          INT NOT NULL DEFAULT 0,
            baths         INT NOT NULL DEFAULT 0,
            area          DOUBLE PRECISION NOT NULL DEFAULT 0,
            property_type TEXT,
            media_type    TEXT NOT NULL,
            for_rent      BOOLEAN NOT NULL DEFAULT FALSE,
            image         TEXT NOT NULL,
            video_url     TEXT,
            tour_id       TEXT,
            gallery       TEXT[],
            description   TEXT,
            contact_phone TEXT,
            contact_email TEXT,
            features      TEXT[],
            display_order INT,
            latitude      DOUBLE PRECISION,
            longitude     DOUBLE PRECISION,
            created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS property_features (
            id         UUID PRIMARY KEY,
            name       TEXT NOT NULL UNIQUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `)
	return err
}
