package datasources

import (
	"context"

	"github.com/akutuzov/jobgraph/internal/domain"
)

// GraphRepository combines everything the graph store exposes to the rest of
// the application.
type GraphRepository interface {
	UserFetcher
	UserSaver
	UserPreferencesSaver
	VacancyFetcher
	VacancySaver
	LatestVacancyLister
	VacancySkillSetLister
	VacancySkillsFetcher
	VacancyEmbeddingLister
	CoLikedCountLister
	FeedbackRecorder
	FeedbackHistoryLister
}

type UserFetcher interface {
	// FetchUser returns nil, nil when no user with that ID exists.
	FetchUser(ctx context.Context, userID string) (*domain.User, error)
}

type UserSaver interface {
	SaveUser(ctx context.Context, user domain.User) error
}

type UserPreferencesSaver interface {
	// SaveUserPreferences overwrites the user's full preference mapping.
	SaveUserPreferences(ctx context.Context, userID string, preferences map[string]float64) error
}

type VacancyFetcher interface {
	// FetchVacancy returns nil, nil when no vacancy with that ID exists.
	FetchVacancy(ctx context.Context, vacancyID string) (*domain.Vacancy, error)
}

type VacancySaver interface {
	SaveVacancy(ctx context.Context, vacancy domain.Vacancy) error
}

type LatestVacancyLister interface {
	ListLatestVacancies(ctx context.Context, limit int) ([]domain.Vacancy, error)
}

type VacancySkillSetLister interface {
	// ListVacancySkillSets returns the required-skill lists of up to limit
	// vacancies that have at least one required skill.
	ListVacancySkillSets(ctx context.Context, limit int) ([]domain.VacancySkillSet, error)
}

type VacancySkillsFetcher interface {
	FetchVacancySkills(ctx context.Context, vacancyID string) ([]string, error)
}

type VacancyEmbeddingLister interface {
	ListVacancyEmbeddings(ctx context.Context, limit int) ([]domain.VacancyEmbedding, error)
}

type CoLikedCountLister interface {
	// ListCoLikedCounts returns, per vacancy, how many distinct users sharing
	// at least one skill with userID have LIKED it, excluding vacancies the
	// user already rated either way. No sharing users yields an empty map.
	ListCoLikedCounts(ctx context.Context, userID string, limit int) (map[string]int, error)
}

type FeedbackRecorder interface {
	RecordFeedback(ctx context.Context, feedback domain.Feedback) error
}

type FeedbackHistoryLister interface {
	// ListFeedbackHistory returns the user's feedback events, newest first.
	ListFeedbackHistory(ctx context.Context, userID string, limit int) ([]domain.FeedbackEntry, error)
}
