package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/akutuzov/jobgraph/internal/app"
	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/datasources/hh"
	"github.com/akutuzov/jobgraph/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	query := flag.String("query", "", "vacancy search query, e.g. a job title")
	limit := flag.Int("limit", 100, "maximum number of vacancies to ingest")
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest-vacancies -query <search query> [-limit N]")
		os.Exit(1)
	}

	if err := run(ctx, *query, *limit); err != nil {
		logger.ErrorContext(ctx, "vacancy ingestion failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "vacancy ingestion completed successfully")
}

func run(ctx context.Context, query string, limit int) error {
	graph, err := app.SetupGraphRepository(ctx)
	if err != nil {
		return fmt.Errorf("setting up graph repository: %w", err)
	}

	embedder, err := app.SetupEmbedder(ctx)
	if err != nil {
		return fmt.Errorf("setting up embedder: %w", err)
	}

	ingestCmd := command.NewIngestVacancies(hh.NewClient(), embedder, graph)

	res, err := ingestCmd.Execute(ctx, command.IngestVacanciesRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "stored vacancies", "count", res.Stored)
	return nil
}
