package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"go-interest-calculator/cache"
	"go-interest-calculator/calculator"
	"go-interest-calculator/config"
	"go-interest-calculator/http"
	"go-interest-calculator/logging"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load(os.Getenv("INTEREST_CONFIG"))
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "building logger", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	calculatorService := calculator.NewService()
	store := newStore(ctx, cfg.Cache, log.With(logger, "component", "cache"))
	if store != nil {
		calculatorService = calculator.NewCachingService(store, cfg.Cache.TTL.Duration, log.With(logger, "component", "calculator_cache"), calculatorService)
	}
	calculatorService = calculator.NewInstrumentingService(calculator.NewMetrics(registry), calculatorService)
	calculatorService = calculator.NewLoggingService(log.With(logger, "component", "calculator"), calculatorService)

	server := &nhttp.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      http.NewServer(calculatorService, registry, log.With(logger, "component", "http")),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration,
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr, "cache", cfg.Cache.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		level.Error(logger).Log("msg", "server failed", "err", err)
		os.Exit(1)
	case sig := <-quit:
		level.Info(logger).Log("msg", "shutting down", "signal", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "shutdown", "err", err)
	}
	closeStore(store, logger)
}

// newStore returns the configured result store, or nil when caching is off.
// An unreachable redis is logged, not fatal: the caching service bypasses a failing store.
func newStore(ctx context.Context, cfg config.CacheConfig, logger log.Logger) cache.Store {
	switch cfg.Backend {
	case config.BackendMemory:
		return cache.NewMemory(ctx, cfg.TTL.Duration, logger)
	case config.BackendRedis:
		store := cache.NewRedis(cfg.RedisAddr, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			level.Warn(logger).Log("msg", "redis unreachable", "addr", cfg.RedisAddr, "err", err)
		}
		return store
	}
	return nil
}

// closeStore releases stores holding connections. Call it once the server stops serving.
func closeStore(store cache.Store, logger log.Logger) {
	closer, ok := store.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		level.Error(logger).Log("msg", "closing cache", "err", err)
	}
}
