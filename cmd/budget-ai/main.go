package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/BoyTiger-1/budget-ai/internal/advisor"
	"github.com/BoyTiger-1/budget-ai/internal/config"
	"github.com/BoyTiger-1/budget-ai/internal/events"
	"github.com/BoyTiger-1/budget-ai/internal/export"
	apphttp "github.com/BoyTiger-1/budget-ai/internal/http"
	"github.com/BoyTiger-1/budget-ai/internal/insights"
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
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	logger.Info("starting budget-ai")

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
			logger.Warn("failed to connect to AMQP, continuing without event publishing", log.FieldError, err.Error())
			eventsClient = nil
		} else {
			defer eventsClient.Close()
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	} else {
		logger.Info("AMQP disabled - expense events will not be published")
	}

	adv := advisor.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAITimeout, logger)
	if cfg.AIEnabled() {
		logger.Info("model-backed advice enabled", "model", cfg.OpenAIModel)
	} else {
		logger.Info("no OpenAI key configured - advice is rule-based only")
	}

	var exporter *export.Exporter
	if cfg.SheetsExportEnabled() {
		exporter, err = export.NewExporter(context.Background(),
			cfg.GoogleSpreadsheetID, cfg.GoogleSheetName,
			cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile, logger)
		if err != nil {
			logger.Warn("failed to initialize Sheets exporter, export endpoint disabled", log.FieldError, err.Error())
			exporter = nil
		} else {
			logger.Info("Sheets exporter initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		}
	} else {
		logger.Info("Sheets export disabled - no spreadsheet configured")
	}

	insightsService := insights.NewService(store)
	expenseService := services.NewExpenseService(store, eventsClient, logger)

	srv := apphttp.NewServer(
		":"+cfg.Port,
		cfg.CORSAllowOrigin,
		store,
		insightsService,
		adv,
		expenseService,
		exporter,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", log.FieldError, err.Error())
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}
