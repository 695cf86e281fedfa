package main

import (
	"context"

	"printcart-api/internal/config"
	"printcart-api/internal/db"
	"printcart-api/internal/logging"
	"printcart-api/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logging.New("seed", "info")
		fallback.Fatal().Err(err).Msg("load config")
	}
	log := logging.New("seed", cfg.LogLevel)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		log.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("seed apply")
	}

	log.Info().Msg("seed applied")
}
