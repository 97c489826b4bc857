package neo4j

import (
	"context"
	"fmt"

	"github.com/akutuzov/jobgraph/internal/domain"
)

func (r *Repository) RecordFeedback(ctx context.Context, feedback domain.Feedback) error {
	if !feedback.Kind.Valid() {
		return fmt.Errorf("unknown feedback kind [%s]", feedback.Kind)
	}

	// Relationship types cannot be parametrized in Cypher; Kind is validated
	// against the closed set above before interpolation.
	statement := fmt.Sprintf(`
		MATCH (u:User {id: $user_id})
		MATCH (v:Vacancy {id: $vacancy_id})
		MERGE (u)-[r:%s]->(v)
		SET r.timestamp = $timestamp
	`, feedback.Kind)

	_, err := r.client.Query(ctx, statement, map[string]any{
		"user_id":    feedback.UserID,
		"vacancy_id": feedback.VacancyID,
		"timestamp":  timeParam(feedback.Timestamp),
	})
	if err != nil {
		return fmt.Errorf("recording %s feedback for vacancy [%s]: %w",
			feedback.Kind, feedback.VacancyID, err)
	}

	return nil
}

func (r *Repository) ListFeedbackHistory(ctx context.Context, userID string, limit int) ([]domain.FeedbackEntry, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (u:User {id: $user_id})-[r:LIKED|DISLIKED|VIEWED|APPLIED]->(v:Vacancy)
		RETURN type(r) AS kind,
		       v.id AS vacancy_id,
		       v.title AS vacancy_title,
		       r.timestamp AS timestamp
		ORDER BY r.timestamp DESC
		LIMIT $limit
	`, map[string]any{
		"user_id": userID,
		"limit":   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing feedback history for user [%s]: %w", userID, err)
	}

	entries := make([]domain.FeedbackEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.FeedbackEntry{
			Kind:         domain.FeedbackKind(asString(row["kind"])),
			VacancyID:    asString(row["vacancy_id"]),
			VacancyTitle: asString(row["vacancy_title"]),
			Timestamp:    asTime(row["timestamp"]),
		})
	}
	return entries, nil
}

func (r *Repository) ListCoLikedCounts(ctx context.Context, userID string, limit int) (map[string]int, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (u1:User {id: $user_id})-[:HAS_SKILL]->(s:Skill)<-[:HAS_SKILL]-(u2:User)
		WHERE u1 <> u2
		WITH DISTINCT u2
		MATCH (u2)-[:LIKED]->(v:Vacancy)
		WHERE NOT EXISTS((:User {id: $user_id})-[:LIKED|DISLIKED]->(v))
		WITH v, COUNT(DISTINCT u2) AS similar_users
		RETURN v.id AS vacancy_id, similar_users
		ORDER BY similar_users DESC
		LIMIT $limit
	`, map[string]any{
		"user_id": userID,
		"limit":   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing co-liked counts for user [%s]: %w", userID, err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[asString(row["vacancy_id"])] = asInt(row["similar_users"])
	}
	return counts, nil
}
