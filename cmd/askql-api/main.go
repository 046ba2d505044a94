package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/askql/askql/internal/api"
	"github.com/askql/askql/internal/config"
	"github.com/askql/askql/internal/nl2sql"
	"github.com/askql/askql/internal/observability"
	duckdbstore "github.com/askql/askql/internal/query/duckdb"
	"github.com/askql/askql/internal/schema"
	"github.com/askql/askql/internal/workflow"
)

func main() {
	cfg, err := config.LoadFromEnv("askql-api")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg, os.Stdout)

	tables, err := schema.Load(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to load schema", slog.Any("error", err))
		os.Exit(1)
	}

	llm, err := nl2sql.NewOpenAIClient(nl2sql.OpenAIConfig{
		BaseURL:     cfg.AI.BaseURL,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		Timeout:     cfg.AI.Timeout,
	})
	if err != nil {
		logger.Error("failed to initialize model client", slog.Any("error", err))
		os.Exit(1)
	}

	store := duckdbstore.NewStore(cfg.Database.Path)
	runner := workflow.New(llm, store, schema.Render(tables), logger)

	deps := api.Dependencies{
		Logger:       logger,
		Runner:       runner,
		SchemaTables: tables,
		GraphDOT:     workflow.DOT,
		Readiness: api.CombineReadinessChecks(
			api.CheckDatabasePath(cfg),
			api.CheckAIConfig(cfg),
		),
		DependencyTimeout: time.Second,
	}

	handler := api.NewHandler(cfg, deps)
	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting api server", slog.String("addr", cfg.HTTP.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("api server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down api server")
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		_ = server.Close()
		os.Exit(1)
	}
}
