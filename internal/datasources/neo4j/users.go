package neo4j

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/akutuzov/jobgraph/internal/domain"
)

func (r *Repository) SaveUser(ctx context.Context, user domain.User) error {
	preferences, err := json.Marshal(user.Preferences)
	if err != nil {
		return fmt.Errorf("encoding user preferences: %w", err)
	}

	_, err = r.client.Query(ctx, `
		MERGE (u:User {id: $id})
		SET u.username = $username,
		    u.resume_text = $resume_text,
		    u.embedding = $embedding,
		    u.preferences = $preferences,
		    u.skills = $skills
	`, map[string]any{
		"id":          user.ID,
		"username":    user.Username,
		"resume_text": user.ResumeText,
		"embedding":   vectorParam(user.Embedding),
		"preferences": string(preferences),
		"skills":      user.Skills,
	})
	if err != nil {
		return fmt.Errorf("saving user [%s]: %w", user.ID, err)
	}

	for _, skill := range user.Skills {
		skillID := domain.NormalizeSkillKey(skill)
		if skillID == "" {
			continue
		}
		_, err = r.client.Query(ctx, `
			MERGE (s:Skill {id: $skill_id})
			SET s.name = $skill_name
			WITH s
			MATCH (u:User {id: $user_id})
			MERGE (u)-[:HAS_SKILL]->(s)
		`, map[string]any{
			"skill_id":   skillID,
			"skill_name": skill,
			"user_id":    user.ID,
		})
		if err != nil {
			return fmt.Errorf("linking user [%s] to skill [%s]: %w", user.ID, skillID, err)
		}
	}

	return nil
}

func (r *Repository) FetchUser(ctx context.Context, userID string) (*domain.User, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (u:User {id: $user_id})
		RETURN u.id AS id,
		       u.username AS username,
		       u.resume_text AS resume_text,
		       u.skills AS skills,
		       u.preferences AS preferences,
		       u.embedding AS embedding
	`, map[string]any{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("fetching user [%s]: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	user := &domain.User{
		ID:         asString(row["id"]),
		Username:   asString(row["username"]),
		ResumeText: asString(row["resume_text"]),
		Skills:     asStringSlice(row["skills"]),
		Embedding:  asVector(row["embedding"]),
	}

	user.Preferences = map[string]float64{}
	if encoded := asString(row["preferences"]); encoded != "" {
		if err := json.Unmarshal([]byte(encoded), &user.Preferences); err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.WarnContext(ctx, "discarding unreadable user preferences",
				"user_id", userID, "error", err)
			user.Preferences = map[string]float64{}
		}
	}

	return user, nil
}

func (r *Repository) SaveUserPreferences(ctx context.Context, userID string, preferences map[string]float64) error {
	encoded, err := json.Marshal(preferences)
	if err != nil {
		return fmt.Errorf("encoding user preferences: %w", err)
	}

	_, err = r.client.Query(ctx, `
		MATCH (u:User {id: $user_id})
		SET u.preferences = $preferences
	`, map[string]any{
		"user_id":     userID,
		"preferences": string(encoded),
	})
	if err != nil {
		return fmt.Errorf("saving preferences for user [%s]: %w", userID, err)
	}

	return nil
}
