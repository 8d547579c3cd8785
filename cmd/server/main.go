package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ricirt/producer-consumer/internal/api"
	"github.com/ricirt/producer-consumer/internal/config"
	"github.com/ricirt/producer-consumer/internal/db"
	applog "github.com/ricirt/producer-consumer/internal/logger"
	"github.com/ricirt/producer-consumer/internal/metrics"
	"github.com/ricirt/producer-consumer/internal/queue"
	"github.com/ricirt/producer-consumer/internal/ratelimiter"
	"github.com/ricirt/producer-consumer/internal/repository"
	"github.com/ricirt/producer-consumer/internal/service"
	"github.com/ricirt/producer-consumer/internal/worker"
)

const journalWriteTimeout = 5 * time.Second

func main() {
	// Bootstrap logger until the configured level and encoding are known.
	logger, _ := zap.NewProduction()

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger, err = applog.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	// ---- consumption journal ----
	ctx := context.Background()
	var repo repository.ConsumptionRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := db.Migrate("file://migrations", cfg.DatabaseURL); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("database migrations applied")
		repo = repository.NewPgConsumptionRepository(pool)
	} else {
		logger.Info("DATABASE_URL not set, keeping the journal in memory", zap.Int("size", cfg.JournalSize))
		repo = repository.NewMemoryConsumptionRepository(cfg.JournalSize)
	}

	// ---- core dependencies ----
	q := queue.New(cfg.QueueCapacity)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, q.Len)
	limiter := ratelimiter.New(cfg.ProduceRate, cfg.ProduceBurst)
	onProduced, onConsumed := m.WorkerHooks()
	svc := service.NewItemService(q, repo, logger, onProduced)

	// ---- worker pool ----
	// Context for all background goroutines; cancelled on shutdown signal.
	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	pool := worker.NewPool(cfg, q, limiter, logger, worker.Hooks{
		OnProduced: onProduced,
		OnConsumed: worker.ChainConsumed(
			onConsumed,
			worker.JournalHook(repo, journalWriteTimeout, logger),
		),
	})
	pool.Start(workerCtx)
	logger.Info("worker pool started",
		zap.Int("producers", cfg.Producers),
		zap.Int("consumers", cfg.Consumers),
		zap.Int("queue_capacity", cfg.QueueCapacity),
	)

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(svc, reg, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	// 1. Stop accepting new items over HTTP.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// 2. Interrupt every blocked Put and Take.
	cancelWorkers()

	// 3. Wait for workers to finish the item they hold.
	pool.Wait()

	logger.Info("server stopped cleanly", zap.Int("items_left", q.Len()))
}
