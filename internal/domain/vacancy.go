package domain

import (
	"time"
)

// Vacancy is a job posting record. It is created and updated by the ingestion
// path and read-only to the recommendation core.
type Vacancy struct {
	ID           string    `json:"id"`
	ExternalID   string    `json:"external_id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	SalaryFrom   *float64  `json:"salary_from,omitempty"`
	SalaryTo     *float64  `json:"salary_to,omitempty"`
	Currency     string    `json:"currency,omitempty"`
	Experience   string    `json:"experience,omitempty"`
	Employment   string    `json:"employment,omitempty"`
	Skills       []string  `json:"skills"`
	CompanyName  string    `json:"company_name,omitempty"`
	LocationName string    `json:"location_name,omitempty"`
	PublishedAt  time.Time `json:"published_at,omitempty"`
	Embedding    []float32 `json:"-"`
}

// VacancySkillSet is the required-skill list of a single vacancy,
// as used by the content matching signal.
type VacancySkillSet struct {
	VacancyID string
	Skills    []string
}

// VacancyEmbedding is a vacancy's description embedding, as used by the
// semantic similarity signal.
type VacancyEmbedding struct {
	VacancyID string
	Embedding []float32
}

// SimilarVacancy is a vector-search hit with its raw similarity score.
type SimilarVacancy struct {
	VacancyID string
	Score     float64
}

// ScoredVacancy is a ranked recommendation candidate. All component scores
// and the total are in [0,1]. Computed fresh per request, never persisted.
type ScoredVacancy struct {
	Vacancy       `json:"vacancy"`
	ContentScore  float64 `json:"content_score"`
	GraphScore    float64 `json:"graph_score"`
	SemanticScore float64 `json:"semantic_score"`
	TotalScore    float64 `json:"total_score"`
}
