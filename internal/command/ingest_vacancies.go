package command

import (
	"context"
	"fmt"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

const ingestPageSize = 100

// IngestVacanciesRequest is the request for the IngestVacancies command.
type IngestVacanciesRequest struct {
	Query string
	Limit int
}

// IngestVacanciesResponse reports how many vacancies were stored.
type IngestVacanciesResponse struct {
	Stored int
}

// IngestVacancies pulls vacancies matching a search query from the external
// job board, embeds them, and stores them in the graph.
type IngestVacancies struct {
	Source   datasources.VacancySource
	Embedder datasources.Embedder
	Saver    datasources.VacancySaver
}

// NewIngestVacancies creates a properly initialized IngestVacancies command.
func NewIngestVacancies(
	source datasources.VacancySource,
	embedder datasources.Embedder,
	saver datasources.VacancySaver,
) *IngestVacancies {
	return &IngestVacancies{
		Source:   source,
		Embedder: embedder,
		Saver:    saver,
	}
}

// Execute ingests up to req.Limit vacancies. Individual vacancies that fail
// to embed or store are logged and skipped; the count of stored vacancies is
// returned.
func (c *IngestVacancies) Execute(ctx context.Context, req IngestVacanciesRequest) (IngestVacanciesResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	var ids []string
	for page := 0; len(ids) < req.Limit; page++ {
		perPage := ingestPageSize
		if remaining := req.Limit - len(ids); remaining < perPage {
			perPage = remaining
		}

		pageIDs, err := c.Source.SearchVacancyIDs(ctx, req.Query, perPage, page)
		if err != nil {
			return IngestVacanciesResponse{}, fmt.Errorf("searching vacancies: %w", err)
		}
		if len(pageIDs) == 0 {
			break
		}
		ids = append(ids, pageIDs...)
	}

	vacancies, err := c.Source.FetchVacancyDetails(ctx, ids)
	if err != nil {
		return IngestVacanciesResponse{}, fmt.Errorf("fetching vacancy details: %w", err)
	}

	stored := 0
	for _, vacancy := range vacancies {
		if len(vacancy.Embedding) == 0 {
			text := vacancy.Title + ". " + vacancy.Description
			embedding, err := c.Embedder.EmbedText(ctx, text)
			if err != nil {
				logger.WarnContext(ctx, "embedding vacancy failed; storing without embedding",
					"vacancy_id", vacancy.ID, "error", err)
			} else {
				vacancy.Embedding = embedding
			}
		}

		if err := c.Saver.SaveVacancy(ctx, vacancy); err != nil {
			logger.WarnContext(ctx, "storing vacancy failed",
				"vacancy_id", vacancy.ID, "error", err)
			continue
		}
		stored++
	}

	logger.InfoContext(ctx, "ingested vacancies",
		"query", req.Query, "found", len(vacancies), "stored", stored)

	return IngestVacanciesResponse{Stored: stored}, nil
}
