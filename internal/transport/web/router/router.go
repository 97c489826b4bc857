package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
	"github.com/akutuzov/jobgraph/internal/transport/web/controller"
)

func MakeRouter(
	graph datasources.GraphRepository,
	recommend command.Command[command.RecommendVacanciesRequest, []domain.ScoredVacancy],
	recordFeedback command.Command[command.RecordFeedbackRequest, command.Empty],
	upsertUser command.Command[command.UpsertUserRequest, domain.User],
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	latestCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/vacancies", controller.VacanciesList{
		Lister:      graph,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/vacancies/{vacancy_id}", controller.VacancyGet{
		Fetcher:     graph,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/recommendations", requireAuthMiddleware(controller.RecommendationsList{
		Command: recommend,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/vacancies/{vacancy_id}/feedback/{kind}", requireAuthMiddleware(controller.FeedbackSet{
		Fetcher: graph,
		Command: recordFeedback,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/feedback", requireAuthMiddleware(controller.FeedbackHistoryList{
		Lister: graph,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/users/me", requireAuthMiddleware(controller.UserUpsert{
		Command: upsertUser,
	})).Methods(http.MethodPut, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          graph,
			CacheMaxAge:     latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
