package controller

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/domain"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

type mockVacancyFetcher struct {
	mock.Mock
}

func (m *mockVacancyFetcher) FetchVacancy(ctx context.Context, vacancyID string) (*domain.Vacancy, error) {
	args := m.Called(ctx, vacancyID)
	vacancy, _ := args.Get(0).(*domain.Vacancy)
	return vacancy, args.Error(1)
}

type mockLatestVacancyLister struct {
	mock.Mock
}

func (m *mockLatestVacancyLister) ListLatestVacancies(ctx context.Context, limit int) ([]domain.Vacancy, error) {
	args := m.Called(ctx, limit)
	vacancies, _ := args.Get(0).([]domain.Vacancy)
	return vacancies, args.Error(1)
}

type mockRecommendCommand struct {
	mock.Mock
}

func (m *mockRecommendCommand) Execute(
	ctx context.Context, req command.RecommendVacanciesRequest,
) ([]domain.ScoredVacancy, error) {
	args := m.Called(ctx, req)
	vacancies, _ := args.Get(0).([]domain.ScoredVacancy)
	return vacancies, args.Error(1)
}

type mockRecordFeedbackCommand struct {
	mock.Mock
}

func (m *mockRecordFeedbackCommand) Execute(
	ctx context.Context, req command.RecordFeedbackRequest,
) (command.Empty, error) {
	args := m.Called(ctx, req)
	return command.Empty{}, args.Error(0)
}
