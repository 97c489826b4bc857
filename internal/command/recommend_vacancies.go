package command

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// RecommendVacanciesRequest is the request for the RecommendVacancies command.
type RecommendVacanciesRequest struct {
	UserID string
	Limit  int
}

// RecommendVacanciesConfig holds the ranking tunables.
type RecommendVacanciesConfig struct {
	// Weights blend the content, graph and semantic signals; they are
	// renormalized at read time when they drift away from summing to 1.
	Weights domain.RecommendationWeights

	// CandidatePoolSize caps how many vacancies each signal considers,
	// bounding per-request scoring cost.
	CandidatePoolSize int
}

// RecommendVacancies ranks vacancies for a user by blending three signals:
// skill overlap with the user's profile, LIKED counts among users sharing
// skills with them, and embedding similarity between their resume and
// vacancy descriptions. A signal whose sub-query fails contributes nothing
// rather than failing the ranking.
type RecommendVacancies struct {
	Users     datasources.UserFetcher
	SkillSets datasources.VacancySkillSetLister
	CoLikes   datasources.CoLikedCountLister
	Vectors   datasources.VacancyVectorSearcher
	Vacancies datasources.VacancyFetcher
	Config    RecommendVacanciesConfig
}

// NewRecommendVacancies creates a properly initialized RecommendVacancies command.
func NewRecommendVacancies(
	users datasources.UserFetcher,
	skillSets datasources.VacancySkillSetLister,
	coLikes datasources.CoLikedCountLister,
	vectors datasources.VacancyVectorSearcher,
	vacancies datasources.VacancyFetcher,
	config RecommendVacanciesConfig,
) *RecommendVacancies {
	return &RecommendVacancies{
		Users:     users,
		SkillSets: skillSets,
		CoLikes:   coLikes,
		Vectors:   vectors,
		Vacancies: vacancies,
		Config:    config,
	}
}

// Execute returns up to req.Limit scored vacancies, best first.
func (c *RecommendVacancies) Execute(
	ctx context.Context, req RecommendVacanciesRequest,
) ([]domain.ScoredVacancy, error) {
	logger := domain.LoggerFromContext(ctx)

	if req.Limit < 0 {
		req.Limit = 0
	}

	user, err := c.Users.FetchUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	// The three sub-queries share no state and are joined before combining.
	var content, graph, semantic map[string]float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		content = c.contentScores(gctx, user)
		return nil
	})
	g.Go(func() error {
		graph = c.graphScores(gctx, user)
		return nil
	})
	g.Go(func() error {
		semantic = c.semanticScores(gctx, user)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	weights, rescaled := c.Config.Weights.Normalize()
	if rescaled {
		logger.WarnContext(ctx, "recommendation weights do not sum to 1, renormalized",
			"content", c.Config.Weights.Content,
			"graph", c.Config.Weights.Graph,
			"semantic", c.Config.Weights.Semantic)
	}

	ranked := domain.CombineScores(
		domain.NormalizeScores(content),
		domain.NormalizeScores(graph),
		domain.NormalizeScores(semantic),
		weights,
	)

	return c.resolve(ctx, ranked, req.Limit), nil
}

// contentScores computes the skill-overlap signal over a bounded candidate
// pool.
func (c *RecommendVacancies) contentScores(ctx context.Context, user *domain.User) map[string]float64 {
	sets, err := c.SkillSets.ListVacancySkillSets(ctx, c.Config.CandidatePoolSize)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "content signal unavailable", "error", err)
		return nil
	}
	return domain.SkillMatchScores(user.Skills, sets)
}

// graphScores computes the collaborative signal: raw LIKED counts among users
// sharing a skill with the target, with the target's own rated vacancies
// already excluded by the store query.
func (c *RecommendVacancies) graphScores(ctx context.Context, user *domain.User) map[string]float64 {
	counts, err := c.CoLikes.ListCoLikedCounts(ctx, user.ID, c.Config.CandidatePoolSize)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "collaborative signal unavailable", "error", err)
		return nil
	}

	scores := make(map[string]float64, len(counts))
	for id, count := range counts {
		scores[id] = float64(count)
	}
	return scores
}

// semanticScores computes embedding similarities between the user's resume
// and vacancy descriptions. A user without an embedding has no semantic
// signal. Negative similarities carry no relevance meaning and are clamped
// to zero rather than penalizing.
func (c *RecommendVacancies) semanticScores(ctx context.Context, user *domain.User) map[string]float64 {
	if len(user.Embedding) == 0 {
		return nil
	}

	similar, err := c.Vectors.SearchSimilarVacancies(ctx, nil, user.Embedding, c.Config.CandidatePoolSize)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "semantic signal unavailable", "error", err)
		return nil
	}

	scores := make(map[string]float64, len(similar))
	for _, s := range similar {
		score := s.Score
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		scores[s.VacancyID] = score
	}
	return scores
}

// resolve maps ranked IDs back to full vacancy records in order, silently
// dropping IDs that no longer resolve, until limit results are collected.
func (c *RecommendVacancies) resolve(
	ctx context.Context, ranked []domain.RankedVacancy, limit int,
) []domain.ScoredVacancy {
	logger := domain.LoggerFromContext(ctx)

	results := make([]domain.ScoredVacancy, 0, limit)
	for _, r := range ranked {
		if len(results) >= limit {
			break
		}

		vacancy, err := c.Vacancies.FetchVacancy(ctx, r.VacancyID)
		if err != nil {
			logger.WarnContext(ctx, "unable to resolve ranked vacancy",
				"vacancy_id", r.VacancyID, "error", err)
			continue
		}
		if vacancy == nil {
			// Stale reference: scored from a signal but no longer stored.
			continue
		}

		results = append(results, domain.ScoredVacancy{
			Vacancy:       *vacancy,
			ContentScore:  r.ContentScore,
			GraphScore:    r.GraphScore,
			SemanticScore: r.SemanticScore,
			TotalScore:    r.TotalScore,
		})
	}

	return results
}
