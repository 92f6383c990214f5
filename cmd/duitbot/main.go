// Command duitbot runs the Telegram expense logger: it parses free-text
// expense messages, appends them to a persistent ledger and replies with
// the sender's running daily total.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/prasetyo/duitbot/pkg/api"
	"github.com/prasetyo/duitbot/pkg/bot"
	"github.com/prasetyo/duitbot/pkg/client"
	"github.com/prasetyo/duitbot/pkg/config"
	"github.com/prasetyo/duitbot/pkg/health"
	"github.com/prasetyo/duitbot/pkg/logging"
	csvstore "github.com/prasetyo/duitbot/pkg/store/csv"
	"github.com/prasetyo/duitbot/pkg/store/jsonfile"
	"github.com/prasetyo/duitbot/pkg/store/postgres"
	sheetsstore "github.com/prasetyo/duitbot/pkg/store/sheets"
	"github.com/prasetyo/duitbot/pkg/tracker"
)

func main() {
	logger := logging.Setup(logging.DefaultConfig())

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN environment variable is required")
	}

	// Setup context with cancellation on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// A store that cannot be reached at boot is a startup failure: the
	// bot refuses to serve messages it could not persist.
	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing %s store: %w", cfg.Store, err)
	}

	trk := tracker.New(store, logger.With("component", "tracker"))

	healthSrv := health.New(cfg.HTTPAddr, logger.With("component", "health"))
	healthSrv.Start()
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := healthSrv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutting down health server", "error", err)
		}
	}()

	restartDelay := time.Duration(cfg.RestartDelaySeconds) * time.Second

	// Supervisor loop: a crashed bot is relaunched after a fixed delay.
	for {
		b, err := bot.New(bot.Config{Token: cfg.BotToken}, trk, logger.With("component", "bot"))
		if err != nil {
			return fmt.Errorf("creating bot: %w", err)
		}

		runErr := b.Run(ctx)
		if ctx.Err() != nil {
			logger.Info("shutting down")
			return nil
		}

		logger.Error("bot stopped unexpectedly, restarting", "error", runErr, "delay", restartDelay)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(restartDelay):
		}
	}
}

func buildStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (api.Store, error) {
	switch cfg.Store {
	case "sheets":
		httpClient, err := client.New(ctx, cfg.GoogleCredentialsFile, cfg.GoogleCredentialsJSON, sheetsv4.SpreadsheetsScope)
		if err != nil {
			return nil, err
		}
		return sheetsstore.New(httpClient, sheetsstore.Config{
			SpreadsheetTitle: cfg.SpreadsheetName,
			SpreadsheetID:    cfg.SpreadsheetID,
			SheetName:        cfg.SheetName,
		}, logger.With("component", "sheets_store"))

	case "postgres":
		return postgres.New(postgres.Config{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			Database: cfg.Postgres.Database,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			SSLMode:  cfg.Postgres.SSLMode,
		}, logger.With("component", "postgres_store"))

	case "csv":
		return csvstore.New(csvstore.Config{FilePath: cfg.CSVPath}, logger.With("component", "csv_store"))

	case "json":
		return jsonfile.New(jsonfile.Config{FilePath: cfg.JSONPath}, logger.With("component", "json_store"))

	default:
		return nil, fmt.Errorf("unknown store %q (expected sheets, postgres, csv or json)", cfg.Store)
	}
}
