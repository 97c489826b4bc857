package neo4j

import (
	"context"
	"fmt"

	neo "github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Client wraps a bolt driver behind a parametrized-query interface returning
// row maps. Empty matches are empty slices; only connectivity and query
// failures surface as errors.
type Client struct {
	driver neo.DriverWithContext
}

func Connect(ctx context.Context, uri, username, password string) (*Client, error) {
	driver, err := neo.NewDriverWithContext(uri, neo.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("checking neo4j connection: %w", err)
	}

	return &Client{driver: driver}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

func (c *Client) Query(ctx context.Context, statement string, params map[string]any) ([]map[string]any, error) {
	result, err := neo.ExecuteQuery(ctx, c.driver, statement, params, neo.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("running graph query: %w", err)
	}

	rows := make([]map[string]any, 0, len(result.Records))
	for _, record := range result.Records {
		rows = append(rows, record.AsMap())
	}
	return rows, nil
}
