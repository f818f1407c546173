package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/muzz-smartmatch/internal/app"
	"github.com/oggyb/muzz-smartmatch/internal/cache"
	"github.com/oggyb/muzz-smartmatch/internal/config"
	"github.com/oggyb/muzz-smartmatch/internal/db"
	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
	"github.com/oggyb/muzz-smartmatch/internal/service/smartmatch"
)

func main() {
	cfg := config.New()
	if cfg.Log.Component == "smartmatch" {
		cfg.Log.Component = "smartmatch-refresher"
	}
	logger.InitFromConfig(cfg)
	log := logger.L()

	if cfg.NATS.URL == "" {
		log.Error("NATS_URL is required for the refresher")
		os.Exit(1)
	}

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	redisCache := cache.NewRedisCache(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(ctx); err != nil {
		cancel()
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	cancel()

	natsConfig := messaging.DefaultNATSConfig()
	natsConfig.URL = cfg.NATS.URL
	natsConfig.Name = cfg.NATS.Name + "-refresher"
	natsClient, err := messaging.NewNATSClient(natsConfig, log)
	if err != nil {
		log.Error("failed to connect to nats", "err", err)
		os.Exit(1)
	}

	svc, err := smartmatch.NewSmartMatchService(app.New(cfg, database, redisCache, natsClient, log))
	if err != nil {
		log.Error("invalid matching configuration", "err", err)
		os.Exit(1)
	}

	worker := smartmatch.NewRefreshWorker(svc.Ranker(), 30*time.Second, log)
	if err := worker.Start(natsClient); err != nil {
		log.Error("failed to start refresh worker", "err", err)
		os.Exit(1)
	}

	log.Info("refresher running",
		"nats_url", cfg.NATS.URL,
		"subject", messaging.SubjectScoresRefresh,
		"concurrency", cfg.Matching.RefreshConcurrency,
	)

	// Graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info("shutting down", "signal", sig.String())

	natsClient.Close() // drains in-flight handlers
	_ = redisCache.Close()
}
