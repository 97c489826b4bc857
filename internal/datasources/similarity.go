package datasources

import (
	"context"
	"sort"

	"github.com/akutuzov/jobgraph/internal/domain"
)

// VacancyVectorSearcher finds vacancies similar to a query vector. Scores are
// raw cosine similarities in [-1,1]; callers clamp as needed.
type VacancyVectorSearcher interface {
	SearchSimilarVacancies(
		ctx context.Context,
		excludeIDs []string,
		vector []float32,
		limit int,
	) ([]domain.SimilarVacancy, error)
}

// NullVectorSearcher is a null implementation of VacancyVectorSearcher.
type NullVectorSearcher struct{}

var _ VacancyVectorSearcher = NullVectorSearcher{}

func (NullVectorSearcher) SearchSimilarVacancies(
	_ context.Context,
	_ []string,
	_ []float32,
	_ int,
) ([]domain.SimilarVacancy, error) {
	return nil, nil
}

// ScanVectorSearcher implements vector search by scanning the embedded
// vacancies in the graph store and computing cosine similarity in process.
// The candidate pool is bounded by the limit passed to the embedding lister,
// which keeps comparison cost proportional to the pool size; an indexed
// search backend can replace it without changing callers.
type ScanVectorSearcher struct {
	Embeddings VacancyEmbeddingLister
}

var _ VacancyVectorSearcher = ScanVectorSearcher{}

func (s ScanVectorSearcher) SearchSimilarVacancies(
	ctx context.Context,
	excludeIDs []string,
	vector []float32,
	limit int,
) ([]domain.SimilarVacancy, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, nil
	}

	embedded, err := s.Embeddings.ListVacancyEmbeddings(ctx, limit)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	results := make([]domain.SimilarVacancy, 0, len(embedded))
	for _, e := range embedded {
		if _, skip := excluded[e.VacancyID]; skip {
			continue
		}
		results = append(results, domain.SimilarVacancy{
			VacancyID: e.VacancyID,
			Score:     domain.CosineSimilarity(vector, e.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].VacancyID < results[j].VacancyID
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}
