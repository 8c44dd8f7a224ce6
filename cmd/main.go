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

	"github.com/joho/godotenv"

	httpadapter "publicaya/internal/adapter/http"
	"publicaya/internal/adapter/postgres"
	"publicaya/internal/adapter/usecase"
	"publicaya/internal/config"
	"publicaya/internal/db"
)

// main is the entry point of the publicaya backend. It loads configuration,
// optionally runs database migrations and seeding, wires the repositories
// and use cases, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	// Load .env when present; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
		} else {
			logger.Info("demo data seeded")
		}
	}

	store := postgres.NewDB(pool)
	accounts := postgres.NewAccountRepository(store)
	profiles := postgres.NewProfileRepository(store)
	transactions := postgres.NewTransactionRepository(store)
	campaigns := postgres.NewCampaignRepository(store)

	notifier := usecase.NewNotificationCenter(cfg.Notify.RemoveDelay)
	defer notifier.Close()

	events := usecase.NewBroadcaster()
	auth := usecase.NewAuthUseCase(accounts, profiles, events, []byte(cfg.Auth.Secret), cfg.Auth.TokenTTL, cfg.Auth.ResetTTL)

	resolver := usecase.NewSessionResolver(auth, profiles, notifier, events)
	defer resolver.Close()

	personal := usecase.NewPersonalUseCase(transactions, notifier, cfg.Ads.ViewDelay,
		usecase.RandomOutcome(cfg.Ads.SuccessRate), cfg.Ads.RewardCents)
	company := usecase.NewCompanyUseCase()
	admin := usecase.NewAdminUseCase(profiles, transactions, campaigns, notifier)

	handler := httpadapter.NewHandler(auth, resolver, personal, company, admin, notifier, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
