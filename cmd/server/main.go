// Package main is the entry point for the bet tracker HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"betlytics/internal/config"
	"betlytics/internal/model"
	"betlytics/internal/pkg/db"
	"betlytics/internal/profit"
	"betlytics/internal/repository"
	"betlytics/internal/server"
	"betlytics/internal/service"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo data for a demo owner and exit")
	flag.Parse()

	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	timezone, err := cfg.Stats.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve stats timezone")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := runMigrations(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	betRepo := repository.NewBetRepository(dbPool.Pool)
	categoryRepo := repository.NewCategoryRepository(dbPool.Pool)

	// Initialize services
	betService := service.NewBetService(betRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	statsService := service.NewStatsService(betRepo, timezone)

	if *seed {
		if err := seedDemoData(ctx, betRepo, categoryRepo); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		log.Info().Msg("Demo data seeded")
		return
	}

	srv := server.New(&server.Dependencies{
		Config:     cfg,
		Bets:       betService,
		Categories: categoryService,
		Stats:      statsService,
		Health:     dbPool,
	})

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	} else {
		log.Info().Msg("Server stopped gracefully")
	}
}

// runMigrations executes database migrations.
func runMigrations(ctx context.Context, pool *db.Pool) error {
	log.Info().Msg("Running database migrations...")

	// Migration 1: Create bets table. Money columns are plain NUMERIC
	// so the database never rounds a stored value.
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bets (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id TEXT NOT NULL,
			event VARCHAR(255) NOT NULL,
			market VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			stake NUMERIC NOT NULL CHECK (stake > 0),
			odds NUMERIC NOT NULL CHECK (odds > 1),
			unit NUMERIC,
			outcome VARCHAR(10) NOT NULL,
			profit NUMERIC,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_bets_owner_created ON bets(user_id, created_at DESC);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 1: bets table created")

	// Migration 2: Create categories table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id TEXT NOT NULL,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, name)
		);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 2: categories table created")

	log.Info().Msg("All migrations completed successfully")
	return nil
}

// seedDemoData inserts a demo owner with categories and a spread of
// bets so a fresh install has something to show on the dashboard.
func seedDemoData(ctx context.Context, bets *repository.BetRepository, categories *repository.CategoryRepository) error {
	const owner = "demo"

	for _, name := range []string{"Football", "Basketball", "eSports"} {
		if _, err := categories.Create(ctx, owner, name); err != nil {
			if errors.Is(err, repository.ErrCategoryExists) {
				continue
			}
			return err
		}
	}

	unit := decimal.NullDecimal{Decimal: decimal.NewFromInt(1), Valid: true}
	demo := []struct {
		event    string
		market   string
		category string
		stake    string
		odds     string
		outcome  model.Outcome
		daysAgo  int
	}{
		{"Arsenal vs Chelsea", "Match Winner", "Football", "10.00", "1.85", model.OutcomeWon, 30},
		{"Real Madrid vs Barcelona", "Over 2.5 Goals", "Football", "15.00", "1.95", model.OutcomeLost, 25},
		{"Lakers vs Celtics", "Handicap -4.5", "Basketball", "20.00", "2.10", model.OutcomeWon, 20},
		{"Bayern vs Dortmund", "Both Teams To Score", "Football", "10.00", "1.70", model.OutcomeVoided, 14},
		{"NaVi vs G2", "Map 1 Winner", "eSports", "5.00", "2.40", model.OutcomeLost, 7},
		{"Warriors vs Suns", "Match Winner", "Basketball", "12.50", "1.65", model.OutcomeWon, 3},
		{"Liverpool vs City", "Match Winner", "Football", "10.00", "2.05", model.OutcomePending, 1},
	}

	for _, d := range demo {
		stake := decimal.RequireFromString(d.stake)
		odds := decimal.RequireFromString(d.odds)
		_, err := bets.Create(ctx, model.NewBet{
			OwnerID:   owner,
			Event:     d.event,
			Market:    d.market,
			Category:  d.category,
			Stake:     stake,
			Odds:      odds,
			Unit:      unit,
			Outcome:   d.outcome,
			Profit:    profit.Compute(stake, odds, d.outcome),
			CreatedAt: time.Now().AddDate(0, 0, -d.daysAgo),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
