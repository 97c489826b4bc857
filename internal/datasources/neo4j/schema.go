package neo4j

import (
	"context"

	"github.com/akutuzov/jobgraph/internal/domain"
)

var schemaStatements = []string{
	"CREATE INDEX user_id IF NOT EXISTS FOR (u:User) ON (u.id)",
	"CREATE INDEX vacancy_id IF NOT EXISTS FOR (v:Vacancy) ON (v.id)",
	"CREATE INDEX skill_id IF NOT EXISTS FOR (s:Skill) ON (s.id)",
	"CREATE INDEX company_id IF NOT EXISTS FOR (c:Company) ON (c.id)",
	"CREATE INDEX location_id IF NOT EXISTS FOR (l:Location) ON (l.id)",
}

// InitializeSchema creates the lookup indexes the recommendation queries rely
// on. Index creation failures are logged and skipped so a partially
// initialized store still comes up.
func (r *Repository) InitializeSchema(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	for _, statement := range schemaStatements {
		if _, err := r.client.Query(ctx, statement, nil); err != nil {
			logger.WarnContext(ctx, "failed to create index", "statement", statement, "error", err)
		}
	}
}
