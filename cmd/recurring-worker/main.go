package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/BoyTiger-1/budget-ai/internal/config"
	"github.com/BoyTiger-1/budget-ai/internal/events"
	"github.com/BoyTiger-1/budget-ai/internal/export"
	"github.com/BoyTiger-1/budget-ai/internal/log"
	"github.com/BoyTiger-1/budget-ai/internal/services"
	"github.com/BoyTiger-1/budget-ai/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Component: log.ComponentWorker,
	})
	log.SetDefault(logger)

	logger.Info("starting recurring-worker")

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}

	store, err := storage.Open(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("failed to open ledger database", log.FieldError, err.Error(), "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer store.Close()

	var eventsClient *events.Client
	if cfg.AMQPURL != "" {
		eventsClient, err = events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("failed to connect to AMQP, continuing without events", log.FieldError, err.Error())
			eventsClient = nil
		} else {
			defer eventsClient.Close()
		}
	}

	var exporter *export.Exporter
	if cfg.SheetsExportEnabled() {
		exporter, err = export.NewExporter(context.Background(),
			cfg.GoogleSpreadsheetID, cfg.GoogleSheetName,
			cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile, logger)
		if err != nil {
			logger.Warn("failed to initialize Sheets exporter, mirroring disabled", log.FieldError, err.Error())
			exporter = nil
		}
	}

	expenseService := services.NewExpenseService(store, eventsClient, logger)
	processor := services.NewRecurringProcessor(store, expenseService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("recurring processor configured",
		"interval", cfg.RecurringInterval.String(),
		"sqlite_db", cfg.SQLiteDBPath)

	g, gctx := errgroup.WithContext(ctx)

	// Periodic posting of due templates, with an immediate run on startup
	// so a restarted worker catches up right away.
	g.Go(func() error {
		if count, err := processor.ProcessDue(gctx, time.Now().UTC()); err != nil {
			logger.Error("initial processing failed", log.FieldError, err.Error())
		} else {
			logger.Info("initial processing complete", "expenses_created", count)
		}

		ticker := time.NewTicker(cfg.RecurringInterval)
		defer ticker.Stop()

		for {
			select {
			case <-gctx.Done():
				return nil
			case now := <-ticker.C:
				count, err := processor.ProcessDue(gctx, now.UTC())
				if err != nil {
					logger.Error("recurring processing failed", log.FieldError, err.Error())
					continue
				}
				if count > 0 {
					logger.Info("recurring processing complete", "expenses_created", count)
				}
			}
		}
	})

	// Mirror created expenses into the Sheets ledger as they are
	// announced. Only runs when both the broker and exporter are up.
	if eventsClient != nil && exporter != nil {
		g.Go(func() error {
			err := eventsClient.ConsumeExpenseCreated(gctx, func(msg *events.ExpenseCreatedMessage) error {
				detail, err := store.GetExpense(gctx, msg.ID)
				if err != nil {
					return err
				}
				_, err = exporter.AppendExpense(gctx, detail)
				return err
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("worker error", log.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("worker stopped gracefully")
}
