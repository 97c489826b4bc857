package app

import (
	"context"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// RecommendVacanciesConfigFromEnv builds the ranking config, falling back to
// the default signal weights and candidate pool when unset.
func RecommendVacanciesConfigFromEnv(ctx context.Context) command.RecommendVacanciesConfig {
	defaults := domain.DefaultRecommendationWeights()

	return command.RecommendVacanciesConfig{
		Weights: domain.RecommendationWeights{
			Content:  GetEnvAsFloatWithDefault(ctx, "RECOMMEND_CONTENT_WEIGHT", defaults.Content),
			Graph:    GetEnvAsFloatWithDefault(ctx, "RECOMMEND_GRAPH_WEIGHT", defaults.Graph),
			Semantic: GetEnvAsFloatWithDefault(ctx, "RECOMMEND_SEMANTIC_WEIGHT", defaults.Semantic),
		},
		CandidatePoolSize: GetEnvAsIntWithDefault(ctx, "RECOMMEND_CANDIDATE_POOL", 100),
	}
}

// FeedbackConfigFromEnv builds the preference-learning config, falling back to
// the default learning rate and regularization.
func FeedbackConfigFromEnv(ctx context.Context) domain.FeedbackConfig {
	defaults := domain.DefaultFeedbackConfig()

	return domain.FeedbackConfig{
		LearningRate:         GetEnvAsFloatWithDefault(ctx, "FEEDBACK_LEARNING_RATE", defaults.LearningRate),
		RegularizationLambda: GetEnvAsFloatWithDefault(ctx, "FEEDBACK_REGULARIZATION_LAMBDA", defaults.RegularizationLambda),
	}
}
