package main

import (
	"os"
	"time"

	"github.com/geocoder89/volcanoes/internal/config"
	"github.com/geocoder89/volcanoes/internal/db"
	"github.com/geocoder89/volcanoes/internal/observability"
)

func main() {
	cfg := config.Load()
	log := observability.NewLogger(cfg.Env)

	ctx, cancel := config.WithTimeout(2 * time.Minute)
	defer cancel()

	if err := db.Migrate(ctx, cfg.DBURL); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	log.Info("migrations applied")
}
