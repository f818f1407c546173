package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-smartmatch/internal/cache"
	"github.com/oggyb/muzz-smartmatch/internal/config"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
)

// AppContext holds shared dependencies (Config, DB, Redis, NATS, Logger).
// NATS is nil when no broker is configured; refreshes then run in-process.
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	NATS       *messaging.NATSClient
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, nc *messaging.NATSClient, logger *slog.Logger) *AppContext {
	if logger == nil {
		logger = slog.Default()
	}
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		NATS:       nc,
		Logger:     logger,
	}
}
