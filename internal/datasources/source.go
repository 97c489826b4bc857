package datasources

import (
	"context"

	"github.com/akutuzov/jobgraph/internal/domain"
)

// VacancySource fetches job postings from an external job board.
type VacancySource interface {
	// SearchVacancyIDs returns one page of matching vacancy IDs.
	SearchVacancyIDs(ctx context.Context, query string, perPage, page int) ([]string, error)

	// FetchVacancyDetails resolves IDs to full vacancy records. IDs that fail
	// to resolve are omitted from the result; a partial batch is not an error.
	FetchVacancyDetails(ctx context.Context, ids []string) ([]domain.Vacancy, error)
}
