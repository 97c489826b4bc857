package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akutuzov/jobgraph/internal/domain"
)

func TestVacanciesList_ServeHTTP(t *testing.T) {
	t.Run("returns_latest_vacancies", func(t *testing.T) {
		lister := &mockLatestVacancyLister{}
		lister.On("ListLatestVacancies", mock.Anything, 20).Return([]domain.Vacancy{
			{ID: "hh_2", Title: "SRE"},
			{ID: "hh_1", Title: "Go Developer"},
		}, nil)

		controller := VacanciesList{
			Lister:      lister,
			CacheMaxAge: time.Hour,
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/vacancies", nil)
		req = testContext()(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

		var got VacanciesListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got.Data, 2)
		assert.Equal(t, "hh_2", got.Data[0].ID)
	})

	t.Run("limit_from_query", func(t *testing.T) {
		lister := &mockLatestVacancyLister{}
		lister.On("ListLatestVacancies", mock.Anything, 5).Return(nil, nil)

		controller := VacanciesList{Lister: lister}

		req := httptest.NewRequest(http.MethodGet, "/v1/vacancies?limit=5", nil)
		req = testContext()(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		lister.AssertExpectations(t)
	})

	t.Run("invalid_limit_rejected", func(t *testing.T) {
		controller := VacanciesList{Lister: &mockLatestVacancyLister{}}

		req := httptest.NewRequest(http.MethodGet, "/v1/vacancies?limit=zero", nil)
		req = testContext()(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list_error", func(t *testing.T) {
		lister := &mockLatestVacancyLister{}
		lister.On("ListLatestVacancies", mock.Anything, 20).
			Return(nil, errors.New("store down"))

		controller := VacanciesList{Lister: lister}

		req := httptest.NewRequest(http.MethodGet, "/v1/vacancies", nil)
		req = testContext()(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
