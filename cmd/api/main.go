package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/geocoder89/volcanoes/internal/auth"
	"github.com/geocoder89/volcanoes/internal/cache"
	"github.com/geocoder89/volcanoes/internal/config"
	"github.com/geocoder89/volcanoes/internal/db"
	httpx "github.com/geocoder89/volcanoes/internal/http"
	"github.com/geocoder89/volcanoes/internal/observability"
	"github.com/geocoder89/volcanoes/internal/repo/memory"
	"github.com/geocoder89/volcanoes/internal/repo/postgres"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load the config set up
	cfg := config.Load()

	// start up the observability logger
	log := observability.NewLogger(cfg.Env)

	if cfg.JWTSecret == "" {
		log.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	if cfg.OTelEnabled {
		ctx, cancel := config.WithTimeout(5 * time.Second)
		shutdownTracer, err := observability.InitTracer(ctx, observability.TracerConfig{
			ServiceName: "volcanoes-api",
			Endpoint:    cfg.OTelEndpoint,
			Env:         cfg.Env,
		})
		cancel()

		if err != nil {
			log.Error("tracer init failed", "err", err)
			os.Exit(1)
		}
		defer func() {
			ctx, cancel := config.WithTimeout(5 * time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := observability.NewProm(reg)

	deps := httpx.Deps{
		Tokens:   auth.NewManager(cfg.JWTSecret, cfg.TokenLifetime),
		Prom:     prom,
		Gatherer: reg,
	}

	var volcanoes cache.VolcanoReader

	switch cfg.Store {
	case "memory":
		log.Warn("using in-memory store, data is lost on restart")
		deps.Users = memory.NewUsersRepo()
		volcanoes = memory.NewVolcanoesRepo(memory.SampleVolcanoes())
	default:
		pool, err := db.NewPool(cfg.DBURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		deps.Users = postgres.NewUsersRepo(pool, prom)
		volcanoes = postgres.NewVolcanoesRepo(pool, prom)
		deps.Ping = func() error {
			ctx, cancel := config.WithTimeout(1 * time.Second)
			defer cancel()

			return pool.Ping(ctx)
		}
	}

	store, closeStore := newCacheStore(cfg, log)
	defer closeStore()

	deps.Volcanoes = cache.NewVolcanoes(volcanoes, store, log).WithMetrics(prom)

	router := httpx.NewRouter(log, cfg, deps)

	// server set up
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.Store)
		err := srv.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info("server shutting down")

	shutdownCh := make(chan struct{})

	go func() {
		defer close(shutdownCh)

		ctx, cancel := config.WithTimeout(10 * time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
		}
	}()

	select {
	case <-shutdownCh:
		log.Info("shutdown complete")

	case <-time.After(12 * time.Second):
		log.Error("shutdown timed out")
	}
}

// newCacheStore prefers Redis when REDIS_ADDR is set and reachable, and
// falls back to an in-process cache otherwise.
func newCacheStore(cfg config.Config, log *slog.Logger) (cache.Store, func()) {
	if cfg.RedisAddr == "" {
		return cache.New(cfg.CacheTTL), func() {}
	}

	rdb := cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx); err != nil {
		log.Warn("redis unavailable, using in-process cache", "addr", cfg.RedisAddr, "err", err)
		_ = rdb.Close()
		return cache.New(cfg.CacheTTL), func() {}
	}

	log.Info("redis cache enabled", "addr", cfg.RedisAddr)
	return rdb, func() { _ = rdb.Close() }
}
