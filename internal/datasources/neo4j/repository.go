package neo4j

import (
	"time"

	"github.com/akutuzov/jobgraph/internal/datasources"
)

var _ datasources.GraphRepository = (*Repository)(nil)

// Repository implements the graph store contracts over a Neo4j client.
type Repository struct {
	client *Client
}

func New(client *Client) *Repository {
	return &Repository{client: client}
}

// Row-value conversion helpers. The driver hands back property values as any;
// missing or null properties come through as nil.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asFloatPtr(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asVector(v any) []float32 {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make([]float32, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		out = append(out, float32(f))
	}
	return out
}

func asTime(v any) time.Time {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Timestamps and embeddings are stored as plain properties: RFC3339 strings
// and float lists, so rows stay portable across driver versions.

func vectorParam(embedding []float32) any {
	if len(embedding) == 0 {
		return nil
	}
	out := make([]float64, len(embedding))
	for i, f := range embedding {
		out[i] = float64(f)
	}
	return out
}

func timeParam(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
