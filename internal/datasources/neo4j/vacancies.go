package neo4j

import (
	"context"
	"fmt"

	"github.com/akutuzov/jobgraph/internal/domain"
)

func (r *Repository) SaveVacancy(ctx context.Context, vacancy domain.Vacancy) error {
	if vacancy.ID == "" {
		return fmt.Errorf("vacancy has no ID")
	}

	_, err := r.client.Query(ctx, `
		MERGE (v:Vacancy {id: $id})
		SET v.external_id = $external_id,
		    v.title = $title,
		    v.description = $description,
		    v.salary_from = $salary_from,
		    v.salary_to = $salary_to,
		    v.currency = $currency,
		    v.experience = $experience,
		    v.employment = $employment,
		    v.skills = $skills,
		    v.company_name = $company_name,
		    v.location_name = $location_name,
		    v.published_at = $published_at,
		    v.embedding = $embedding
	`, map[string]any{
		"id":            vacancy.ID,
		"external_id":   vacancy.ExternalID,
		"title":         vacancy.Title,
		"description":   vacancy.Description,
		"salary_from":   floatParam(vacancy.SalaryFrom),
		"salary_to":     floatParam(vacancy.SalaryTo),
		"currency":      vacancy.Currency,
		"experience":    vacancy.Experience,
		"employment":    vacancy.Employment,
		"skills":        vacancy.Skills,
		"company_name":  vacancy.CompanyName,
		"location_name": vacancy.LocationName,
		"published_at":  timeParam(vacancy.PublishedAt),
		"embedding":     vectorParam(vacancy.Embedding),
	})
	if err != nil {
		return fmt.Errorf("saving vacancy [%s]: %w", vacancy.ID, err)
	}

	for _, skill := range vacancy.Skills {
		skillID := domain.NormalizeSkillKey(skill)
		if skillID == "" {
			continue
		}
		_, err = r.client.Query(ctx, `
			MERGE (s:Skill {id: $skill_id})
			SET s.name = $skill_name
			WITH s
			MATCH (v:Vacancy {id: $vacancy_id})
			MERGE (v)-[:REQUIRES]->(s)
		`, map[string]any{
			"skill_id":   skillID,
			"skill_name": skill,
			"vacancy_id": vacancy.ID,
		})
		if err != nil {
			return fmt.Errorf("linking vacancy [%s] to skill [%s]: %w", vacancy.ID, skillID, err)
		}
	}

	if vacancy.CompanyName != "" {
		if err := r.linkVacancyNode(ctx, vacancy.ID, "Company", "FROM_COMPANY", vacancy.CompanyName); err != nil {
			return err
		}
	}

	if vacancy.LocationName != "" {
		if err := r.linkVacancyNode(ctx, vacancy.ID, "Location", "IN_LOCATION", vacancy.LocationName); err != nil {
			return err
		}
	}

	return nil
}

// linkVacancyNode merges a named node of the given label and attaches the
// vacancy to it. Labels and relationship types come from call sites, never
// from input.
func (r *Repository) linkVacancyNode(ctx context.Context, vacancyID, label, relation, name string) error {
	statement := fmt.Sprintf(`
		MERGE (n:%s {id: $node_id})
		SET n.name = $name
		WITH n
		MATCH (v:Vacancy {id: $vacancy_id})
		MERGE (v)-[:%s]->(n)
	`, label, relation)

	_, err := r.client.Query(ctx, statement, map[string]any{
		"node_id":    domain.NormalizeSkillKey(name),
		"name":       name,
		"vacancy_id": vacancyID,
	})
	if err != nil {
		return fmt.Errorf("linking vacancy [%s] to %s: %w", vacancyID, label, err)
	}
	return nil
}

const vacancyReturnClause = `
	RETURN v.id AS id,
	       v.external_id AS external_id,
	       v.title AS title,
	       v.description AS description,
	       v.salary_from AS salary_from,
	       v.salary_to AS salary_to,
	       v.currency AS currency,
	       v.experience AS experience,
	       v.employment AS employment,
	       v.skills AS skills,
	       v.company_name AS company_name,
	       v.location_name AS location_name,
	       v.published_at AS published_at,
	       v.embedding AS embedding
`

func (r *Repository) FetchVacancy(ctx context.Context, vacancyID string) (*domain.Vacancy, error) {
	rows, err := r.client.Query(ctx,
		`MATCH (v:Vacancy {id: $vacancy_id})`+vacancyReturnClause,
		map[string]any{"vacancy_id": vacancyID})
	if err != nil {
		return nil, fmt.Errorf("fetching vacancy [%s]: %w", vacancyID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	vacancy := vacancyFromRow(rows[0])
	return &vacancy, nil
}

func (r *Repository) ListLatestVacancies(ctx context.Context, limit int) ([]domain.Vacancy, error) {
	rows, err := r.client.Query(ctx,
		`MATCH (v:Vacancy)
		 WITH v ORDER BY coalesce(v.published_at, "") DESC
		 LIMIT $limit`+vacancyReturnClause,
		map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("listing latest vacancies: %w", err)
	}

	vacancies := make([]domain.Vacancy, 0, len(rows))
	for _, row := range rows {
		vacancies = append(vacancies, vacancyFromRow(row))
	}
	return vacancies, nil
}

func (r *Repository) ListVacancySkillSets(ctx context.Context, limit int) ([]domain.VacancySkillSet, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (v:Vacancy)
		WHERE v.skills IS NOT NULL AND size(v.skills) > 0
		RETURN v.id AS vacancy_id, v.skills AS skills
		LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("listing vacancy skill sets: %w", err)
	}

	sets := make([]domain.VacancySkillSet, 0, len(rows))
	for _, row := range rows {
		sets = append(sets, domain.VacancySkillSet{
			VacancyID: asString(row["vacancy_id"]),
			Skills:    asStringSlice(row["skills"]),
		})
	}
	return sets, nil
}

func (r *Repository) FetchVacancySkills(ctx context.Context, vacancyID string) ([]string, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (v:Vacancy {id: $vacancy_id})
		RETURN v.skills AS skills
	`, map[string]any{"vacancy_id": vacancyID})
	if err != nil {
		return nil, fmt.Errorf("fetching skills for vacancy [%s]: %w", vacancyID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return asStringSlice(rows[0]["skills"]), nil
}

func (r *Repository) ListVacancyEmbeddings(ctx context.Context, limit int) ([]domain.VacancyEmbedding, error) {
	rows, err := r.client.Query(ctx, `
		MATCH (v:Vacancy)
		WHERE v.embedding IS NOT NULL
		RETURN v.id AS vacancy_id, v.embedding AS embedding
		LIMIT $limit
	`, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("listing vacancy embeddings: %w", err)
	}

	embedded := make([]domain.VacancyEmbedding, 0, len(rows))
	for _, row := range rows {
		embedded = append(embedded, domain.VacancyEmbedding{
			VacancyID: asString(row["vacancy_id"]),
			Embedding: asVector(row["embedding"]),
		})
	}
	return embedded, nil
}

func vacancyFromRow(row map[string]any) domain.Vacancy {
	return domain.Vacancy{
		ID:           asString(row["id"]),
		ExternalID:   asString(row["external_id"]),
		Title:        asString(row["title"]),
		Description:  asString(row["description"]),
		SalaryFrom:   asFloatPtr(row["salary_from"]),
		SalaryTo:     asFloatPtr(row["salary_to"]),
		Currency:     asString(row["currency"]),
		Experience:   asString(row["experience"]),
		Employment:   asString(row["employment"]),
		Skills:       asStringSlice(row["skills"]),
		CompanyName:  asString(row["company_name"]),
		LocationName: asString(row["location_name"]),
		PublishedAt:  asTime(row["published_at"]),
		Embedding:    asVector(row["embedding"]),
	}
}

func floatParam(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
