// Package scorefeed wraps the external football results API: fixtures
// by date, live fixtures, and the translation of feed status codes into
// match states. The feed is the source of truth for scores; everything
// here is read-only.
package scorefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/westbet/westbetpro/internal/pkg/config"
)

const defaultBaseURL = "https://v3.football.api-sports.io"

// Client fetches fixtures from the score feed.
type Client interface {
	// FixturesOnDate returns all fixtures scheduled on the given day.
	FixturesOnDate(ctx context.Context, date time.Time) ([]Fixture, error)

	// LiveFixtures returns all fixtures currently in play.
	LiveFixtures(ctx context.Context) ([]Fixture, error)
}

// Cache is the optional day-fixture cache in front of the feed. Cache
// failures degrade to direct fetches, never to request failures.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// HTTPClient is the production feed client.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	cache    Cache
	cacheTTL time.Duration
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a feed client. cache may be nil.
func NewHTTPClient(cfg *config.ScoreFeedConfig, cache Cache) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HTTPClient{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: cfg.Timeout},
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
	}
}

func (c *HTTPClient) FixturesOnDate(ctx context.Context, date time.Time) ([]Fixture, error) {
	day := date.Format("2006-01-02")
	cacheKey := "scorefeed:fixtures:" + day

	if c.cache != nil {
		var cached []Fixture
		hit, err := c.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			slog.Warn("score feed cache read failed", "key", cacheKey, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	fixtures, err := c.fetchFixtures(ctx, url.Values{"date": {day}})
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, cacheKey, fixtures, c.cacheTTL); err != nil {
			slog.Warn("score feed cache write failed", "key", cacheKey, "error", err)
		}
	}
	return fixtures, nil
}

func (c *HTTPClient) LiveFixtures(ctx context.Context) ([]Fixture, error) {
	// Live data is never cached.
	return c.fetchFixtures(ctx, url.Values{"live": {"all"}})
}

func (c *HTTPClient) fetchFixtures(ctx context.Context, params url.Values) ([]Fixture, error) {
	rawURL := c.baseURL + "/fixtures?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("score feed request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read score feed response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("score feed returned status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse score feed response: %w", err)
	}

	fixtures := make([]Fixture, 0, len(envelope.Response))
	for i := range envelope.Response {
		fixtures = append(fixtures, envelope.Response[i].toFixture())
	}
	return fixtures, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
