package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/akutuzov/jobgraph/internal/domain"
)

type mockFeedbackHistoryLister struct {
	mock.Mock
}

func (m *mockFeedbackHistoryLister) ListFeedbackHistory(
	ctx context.Context, userID string, limit int,
) ([]domain.FeedbackEntry, error) {
	args := m.Called(ctx, userID, limit)
	entries, _ := args.Get(0).([]domain.FeedbackEntry)
	return entries, args.Error(1)
}

func TestFeedbackHistoryList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns_history_newest_first", func(t *testing.T) {
		lister := &mockFeedbackHistoryLister{}
		lister.On("ListFeedbackHistory", mock.Anything, "user1", 50).Return([]domain.FeedbackEntry{
			{Kind: domain.FeedbackLiked, VacancyID: "v2", VacancyTitle: "SRE", Timestamp: testTime},
			{Kind: domain.FeedbackViewed, VacancyID: "v1", VacancyTitle: "Go Developer", Timestamp: testTime.Add(-time.Hour)},
		}, nil)

		controller := FeedbackHistoryList{Lister: lister}

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback", nil)
		req = testContextWithUserID("user1")(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got FeedbackHistoryListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got.Data, 2)
		assert.Equal(t, "v2", got.Data[0].VacancyID)
		assert.Equal(t, domain.FeedbackLiked, got.Data[0].Kind)
	})

	t.Run("missing_user_rejected", func(t *testing.T) {
		controller := FeedbackHistoryList{Lister: &mockFeedbackHistoryLister{}}

		req := httptest.NewRequest(http.MethodGet, "/v1/feedback", nil)
		req = testContext()(req)

		rec := httptest.NewRecorder()
		controller.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
