// Command seed copies the embedded certified receipts into PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"receipt-certifier/config"
	pgStorage "receipt-certifier/internal/adapter/storage/postgres"
	"receipt-certifier/internal/adapter/storage/static"
	"receipt-certifier/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("RCPT_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	receipts, err := static.NewSource().LoadCertified(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read embedded certified receipts")
	}

	if err := pgStorage.NewCertifiedRepo(pool).SaveAll(ctx, receipts); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed certified receipts")
	}
	log.Info().Int("count", len(receipts)).Msg("Certified receipts seeded")
}
