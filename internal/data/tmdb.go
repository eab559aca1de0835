package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movieshelf/internal/biz"
	"movieshelf/internal/conf"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var ErrTmdbUnavailable = kerrors.ServiceUnavailable("TMDB_UNAVAILABLE", "movie database is unavailable")

const retryBackoff = 100 * time.Millisecond

type tmdbClient struct {
	client       *http.Client
	baseURL      string
	imageBaseURL string
	accessToken  string
	maxRetries   int
	data         *Data
	log          *log.Helper
}

// statusError is a non-2xx answer from the movie database.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code >= http.StatusInternalServerError || e.code == http.StatusTooManyRequests
}

// tmdbMovie is the movie shape shared by search results and details.
type tmdbMovie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

type tmdbSearchResponse struct {
	Page    int          `json:"page"`
	Results []*tmdbMovie `json:"results"`
}

// NewTmdbClient creates a client for the external movie database
func NewTmdbClient(c *conf.Tmdb, data *Data, logger log.Logger) (biz.SearchClient, error) {
	if c == nil {
		return nil, errors.New("missing tmdb config")
	}
	timeout := c.Timeout.AsDuration()
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &tmdbClient{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:      strings.TrimRight(c.Url, "/"),
		imageBaseURL: strings.TrimRight(c.ImageBaseUrl, "/"),
		accessToken:  c.AccessToken,
		maxRetries:   int(c.MaxRetries),
		data:         data,
		log:          log.NewHelper(logger),
	}, nil
}

func searchCacheKey(title string) string {
	return "tmdb:search:" + strings.ToLower(title)
}

func detailsCacheKey(id int64) string {
	return fmt.Sprintf("tmdb:movie:%d", id)
}

func (c *tmdbClient) SearchByTitle(ctx context.Context, title string) ([]*biz.SearchResult, error) {
	var movies []*tmdbMovie
	if !c.data.cacheGet(ctx, searchCacheKey(title), &movies) {
		var resp tmdbSearchResponse
		q := url.Values{"query": {title}}
		if err := c.getWithRetry(ctx, "/search/movie", q, &resp); err != nil {
			return nil, err
		}
		movies = resp.Results
		c.data.cacheSet(ctx, searchCacheKey(title), movies)
		// the selection step usually asks for one of these next
		for _, m := range movies {
			c.data.cacheSet(ctx, detailsCacheKey(m.ID), m)
		}
	}

	results := make([]*biz.SearchResult, 0, len(movies))
	for _, m := range movies {
		results = append(results, c.toResult(m))
	}
	return results, nil
}

func (c *tmdbClient) Details(ctx context.Context, id int64) (*biz.SearchResult, error) {
	var movie tmdbMovie
	if !c.data.cacheGet(ctx, detailsCacheKey(id), &movie) {
		if err := c.getWithRetry(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &movie); err != nil {
			return nil, err
		}
		c.data.cacheSet(ctx, detailsCacheKey(id), &movie)
	}
	return c.toResult(&movie), nil
}

func (c *tmdbClient) toResult(m *tmdbMovie) *biz.SearchResult {
	r := &biz.SearchResult{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Overview:    m.Overview,
		PosterPath:  m.PosterPath,
	}
	if m.PosterPath != "" {
		r.PosterURL = c.imageBaseURL + "/" + strings.TrimLeft(m.PosterPath, "/")
	}
	return r
}

func (c *tmdbClient) getWithRetry(ctx context.Context, path string, q url.Values, out interface{}) error {
	var (
		lastErr  error
		attempts int
	)

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.log.Infof("retrying movie database request %s, attempt %d/%d", path, attempt, c.maxRetries)
			select {
			case <-ctx.Done():
				return fmt.Errorf("movie database request %s: %w", path, ctx.Err())
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		attempts++
		err := c.doRequest(ctx, path, q, out)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return fmt.Errorf("movie database request %s: %w", path, ctx.Err())
		}
		var se *statusError
		if errors.As(err, &se) {
			if se.code == http.StatusNotFound {
				return biz.ErrMovieNotFound
			}
			if !se.retryable() {
				break
			}
		}
	}

	c.log.Warnf("movie database request %s failed after %d attempts: %v", path, attempts, lastErr)
	return ErrTmdbUnavailable.WithCause(lastErr)
}

func (c *tmdbClient) doRequest(ctx context.Context, path string, q url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		// *url.Error carries the full URL; keep only the cause
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
