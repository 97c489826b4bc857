package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/domain"
)

var _ datasources.VacancySource = (*Client)(nil)

const (
	defaultBaseURL = "https://api.hh.ru"
	userAgent      = "jobgraph/1.0"

	// fetchConcurrency bounds in-flight detail requests per batch.
	fetchConcurrency = 5

	// fetchAttempts bounds retries per item on rate-limit responses; an item
	// that still fails is dropped from the batch, not the whole batch.
	fetchAttempts = 3
)

// Client fetches vacancies from the HH.ru public API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

type searchResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
}

func (c *Client) SearchVacancyIDs(ctx context.Context, query string, perPage, page int) ([]string, error) {
	if perPage > 100 {
		perPage = 100
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("search_field", "name")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/vacancies?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching vacancies: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vacancy search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}
	return ids, nil
}

func (c *Client) FetchVacancyDetails(ctx context.Context, ids []string) ([]domain.Vacancy, error) {
	logger := domain.LoggerFromContext(ctx)

	fetched := make([]*domain.Vacancy, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			vacancy, err := c.fetchVacancy(gctx, id)
			if err != nil {
				logger.WarnContext(gctx, "dropping vacancy from batch",
					"external_id", id, "error", err)
				return nil
			}
			fetched[i] = vacancy
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	vacancies := make([]domain.Vacancy, 0, len(ids))
	for _, v := range fetched {
		if v != nil {
			vacancies = append(vacancies, *v)
		}
	}
	return vacancies, nil
}

// fetchVacancy retrieves one vacancy's details, retrying rate-limit
// responses with exponential backoff.
func (c *Client) fetchVacancy(ctx context.Context, id string) (*domain.Vacancy, error) {
	var payload vacancyPayload

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = time.Second
	expo.MaxInterval = 10 * time.Second

	op := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/vacancies/"+url.PathEscape(id), nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating detail request: %w", err))
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("fetching vacancy detail: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				return backoff.Permanent(fmt.Errorf("decoding vacancy detail: %w", err))
			}
			return nil
		case resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("rate limited fetching vacancy [%s]", id)
		default:
			return backoff.Permanent(fmt.Errorf("vacancy detail returned status %d", resp.StatusCode))
		}
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(expo, fetchAttempts-1), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}

	return parseVacancy(payload)
}
