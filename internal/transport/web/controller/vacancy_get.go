package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

type VacancyGet struct {
	Fetcher     datasources.VacancyFetcher
	CacheMaxAge time.Duration
}

func (c VacancyGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	id := vars["vacancy_id"]

	vacancy, err := c.Fetcher.FetchVacancy(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch vacancy", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if vacancy == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(vacancy); err != nil {
		logger.ErrorContext(ctx, "unable to write vacancy to response", "error", err)
	}
}
