package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"dochub/internal/config"
	"dochub/internal/repository/postgres"

	"github.com/joho/godotenv"
)

func main() {
	drop := flag.Bool("drop", false, "Drop all tables for the current environment prefix before migrating")
	dropOnly := flag.Bool("drop-only", false, "Drop all tables and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*drop || *dropOnly) {
		log.Fatalf("BLOCKED: cannot drop tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *drop || *dropOnly {
		if err := postgres.DropAll(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		logger.Info("dropped all tables", "table_prefix", cfg.TablePrefix)
		if *dropOnly {
			return
		}
	}

	if err := postgres.Migrate(ctx, pool, tables, logger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("migrations complete", "table_prefix", cfg.TablePrefix)
}
