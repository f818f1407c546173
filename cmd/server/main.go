package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/muzz-smartmatch/internal/app"
	"github.com/oggyb/muzz-smartmatch/internal/cache"
	"github.com/oggyb/muzz-smartmatch/internal/config"
	"github.com/oggyb/muzz-smartmatch/internal/db"
	"github.com/oggyb/muzz-smartmatch/internal/httpapi"
	"github.com/oggyb/muzz-smartmatch/internal/logger"
	"github.com/oggyb/muzz-smartmatch/internal/messaging"
	"github.com/oggyb/muzz-smartmatch/internal/server"
	"github.com/oggyb/muzz-smartmatch/internal/service/smartmatch"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		os.Exit(1)
	}
	defer redisCache.Close()

	// Init NATS (optional); without it refreshes run in-process
	var natsClient *messaging.NATSClient
	if cfg.NATS.URL != "" {
		natsConfig := messaging.DefaultNATSConfig()
		natsConfig.URL = cfg.NATS.URL
		natsConfig.Name = cfg.NATS.Name + "-server"
		natsClient, err = messaging.NewNATSClient(natsConfig, log)
		if err != nil {
			log.Error("failed to connect to nats", "err", err)
			os.Exit(1)
		}
		defer natsClient.Close()
	} else {
		log.Info("NATS_URL not set, running score refreshes in-process")
	}

	// Inject logger into app context
	appCtx := app.New(cfg, database, redisCache, natsClient, log)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	svc, err := smartmatch.NewSmartMatchService(appCtx)
	if err != nil {
		log.Error("invalid matching configuration", "err", err)
		os.Exit(1)
	}

	grpcServer := server.NewGRPCServer(log, smartmatch.NewRegistrar(svc))
	lis, err := server.Listen(cfg)
	if err != nil {
		log.Error("failed to start gRPC server", "err", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(httpapi.RouterConfig{Handler: httpapi.NewHandler(svc), Logger: log}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gRPC server", "addr", lis.Addr().String())
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info("starting HTTP server", "addr", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("http shutdown", "err", err)
		}
		grpcServer.GracefulStop()
		svc.Wait() // let in-flight refresh requests finish
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}
