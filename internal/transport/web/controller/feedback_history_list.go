package controller

import (
	"encoding/json"
	"net/http"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

type FeedbackHistoryList struct {
	Lister datasources.FeedbackHistoryLister
}

type FeedbackHistoryListResponse struct {
	Data []domain.FeedbackEntry `json:"data"`
}

func (c FeedbackHistoryList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	limit, err := parseLimit(r.URL.Query(), 50, 200)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := c.Lister.ListFeedbackHistory(ctx, userID, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch feedback history", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []domain.FeedbackEntry{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(FeedbackHistoryListResponse{Data: entries}); err != nil {
		logger.ErrorContext(ctx, "unable to write feedback history to response", "error", err)
	}
}
