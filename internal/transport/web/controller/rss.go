package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

const rssItemCount = 50

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.LatestVacancyLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "JobGraph Vacancies",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of new vacancies added to the job graph",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	vacancies, err := c.Lister.ListLatestVacancies(ctx, rssItemCount)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch vacancies for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, v := range vacancies {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          v.ID,
			IsPermaLink: "false",
			Title:       v.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/vacancies/" + v.ID},
			Description: vacancySummary(v),
			Author: &feeds.Author{
				Name: v.CompanyName,
			},
			Created: v.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func vacancySummary(v domain.Vacancy) string {
	const maxSummary = 500

	summary := v.Description
	if len([]rune(summary)) > maxSummary {
		summary = string([]rune(summary)[:maxSummary]) + "…"
	}
	return summary
}
