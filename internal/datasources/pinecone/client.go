package pinecone

import (
	"context"
	"fmt"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.VacancyVectorSearcher = (*Client)(nil)

const vacancyNamespace = "vacancies"

// Client answers vector-similarity queries against a Pinecone index whose
// vector IDs are vacancy IDs. It replaces the in-process scan when the
// vacancy pool outgrows per-request cosine computation.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(ctx context.Context, apiKey, indexName string) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) SearchSimilarVacancies(
	ctx context.Context,
	excludeIDs []string,
	vector []float32,
	limit int,
) ([]domain.SimilarVacancy, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, nil
	}
	if limit > 10000 {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: vacancyNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() {
		if closeErr := idxConn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	filter, err := exclusionFilter(excludeIDs)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vacancy vectors: %w", err)
	}

	results := make([]domain.SimilarVacancy, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		results = append(results, domain.SimilarVacancy{
			VacancyID: match.Vector.Id,
			Score:     float64(match.Score),
		})
	}

	return results, nil
}

func exclusionFilter(excludeIDs []string) (*pinecone.MetadataFilter, error) {
	if len(excludeIDs) == 0 {
		return nil, nil
	}

	excluded := make([]any, 0, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded = append(excluded, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"vacancy_id": map[string]any{
			"$nin": excluded,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter: %w", err)
	}
	return filter, nil
}
