package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/learnio/learnio/internal/bootstrap"
	"github.com/learnio/learnio/internal/cache"
	"github.com/learnio/learnio/internal/config"
	"github.com/learnio/learnio/internal/database"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openDatabase() (*config.Config, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return cfg, db, nil
}

// environment holds everything a command needs to call the services.
type environment struct {
	cfg        *config.Config
	db         *sqlx.DB
	redis      *redis.Client
	components *bootstrap.Components
}

// openEnvironment connects to MySQL and, when reachable, Redis. Commands run
// without the summary cache if Redis is down.
func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, db, err := openDatabase()
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg, db: db}

	var redisCmd redis.Cmdable
	if client, err := cache.NewClient(ctx, cfg.Redis); err != nil {
		slog.Debug("redis unavailable, running without cache", "error", err)
	} else {
		env.redis = client
		redisCmd = client
	}

	components, err := bootstrap.NewComponents(cfg, db, redisCmd)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("create components: %w", err)
	}
	env.components = components
	return env, nil
}

func (e *environment) Close() {
	if e.components != nil {
		_ = e.components.Close()
	}
	if e.redis != nil {
		_ = e.redis.Close()
	}
	_ = e.db.Close()
}
