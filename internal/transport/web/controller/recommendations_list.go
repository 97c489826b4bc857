package controller

import (
	"encoding/json"
	"net/http"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/domain"
)

type RecommendationsList struct {
	Command command.Command[command.RecommendVacanciesRequest, []domain.ScoredVacancy]
}

type RecommendationsListResponse struct {
	Data []domain.ScoredVacancy `json:"data"`
}

func (c RecommendationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	limit, err := parseLimit(r.URL.Query(), 10, 50)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// A failed ranking degrades to an empty list rather than a 5xx; the
	// failure is visible in the logs.
	vacancies, err := c.Command.Execute(ctx, command.RecommendVacanciesRequest{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended vacancies", "error", err)
		vacancies = nil
	}

	if vacancies == nil {
		vacancies = []domain.ScoredVacancy{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RecommendationsListResponse{Data: vacancies}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended vacancies to response", "error", err)
	}
}
