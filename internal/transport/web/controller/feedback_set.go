package controller

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

// Route parameter values for the feedback kind.
var feedbackKindParams = map[string]domain.FeedbackKind{
	"like":    domain.FeedbackLiked,
	"dislike": domain.FeedbackDisliked,
	"view":    domain.FeedbackViewed,
	"apply":   domain.FeedbackApplied,
}

type FeedbackSet struct {
	Fetcher datasources.VacancyFetcher
	Command command.Command[command.RecordFeedbackRequest, command.Empty]
}

func (c FeedbackSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vacancyID := vars["vacancy_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("vacancy_id", vacancyID))

	kind, ok := feedbackKindParams[vars["kind"]]
	if !ok {
		logger.ErrorContext(ctx, "invalid feedback kind", "kind", vars["kind"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vacancy, err := c.Fetcher.FetchVacancy(ctx, vacancyID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch vacancy", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if vacancy == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	userID := domain.UserIDFromContext(r.Context())
	if _, err := c.Command.Execute(ctx, command.RecordFeedbackRequest{
		UserID:    userID,
		VacancyID: vacancyID,
		Kind:      kind,
	}); err != nil {
		logger.ErrorContext(ctx, "failed to record feedback", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
