package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

type VacanciesList struct {
	Lister      datasources.LatestVacancyLister
	CacheMaxAge time.Duration
}

type VacanciesListResponse struct {
	Data []domain.Vacancy `json:"data"`
}

func (c VacanciesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	limit, err := parseLimit(r.URL.Query(), 20, 100)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vacancies, err := c.Lister.ListLatestVacancies(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch vacancies", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if vacancies == nil {
		vacancies = []domain.Vacancy{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(VacanciesListResponse{Data: vacancies}); err != nil {
		logger.ErrorContext(ctx, "unable to write vacancies to response", "error", err)
	}
}
