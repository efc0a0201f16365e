// Package apisports is the HTTP client for the API-Sports football, american
// football and basketball APIs.
package apisports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Vodeneev/oddsline/internal/pkg/cache"
	"github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

const keyHeader = "x-apisports-key"

type Client struct {
	key       string
	bases     map[enums.Family]string
	leagueIDs map[enums.League]int
	client    *http.Client
	cache     cache.Cache
	cacheTTL  time.Duration
	retries   int
	backoff   time.Duration
	maxPages  int
	sf        singleflight.Group
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewClient builds a client from config. c may be nil to disable caching. A
// missing key is reported per request with ErrMissingAPIKey.
func NewClient(cfg *config.APISportsConfig, c cache.Cache, cacheTTL time.Duration) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 10
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}

	leagueIDs := make(map[enums.League]int)
	for _, l := range enums.GetAllLeagues() {
		leagueIDs[l] = l.GetLeagueInfo().LeagueID
	}
	for name, id := range cfg.LeagueIDs {
		if l, ok := enums.ParseLeague(name); ok && id > 0 {
			leagueIDs[l] = id
		}
	}

	return &Client{
		key: cfg.Key,
		bases: map[enums.Family]string{
			enums.FamilySoccer:           strings.TrimSuffix(cfg.BaseFootball, "/"),
			enums.FamilyAmericanFootball: strings.TrimSuffix(cfg.BaseAmericanFootball, "/"),
			enums.FamilyBasketball:       strings.TrimSuffix(cfg.BaseBasketball, "/"),
		},
		leagueIDs: leagueIDs,
		client:    &http.Client{Timeout: timeout},
		cache:     c,
		cacheTTL:  cacheTTL,
		retries:   retries,
		backoff:   cfg.Backoff,
		maxPages:  maxPages,
		sleep:     sleepContext,
	}
}

// LeagueID returns the provider league id used for a league.
func (c *Client) LeagueID(league enums.League) int {
	return c.leagueIDs[league]
}

func (c *Client) endpoint(league enums.League, path string) (string, error) {
	if !league.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLeague, league)
	}
	base := c.bases[league.Family()]
	if base == "" {
		return "", fmt.Errorf("%w: no base url for %s", ErrUnsupportedLeague, league)
	}
	return base + "/" + strings.TrimPrefix(path, "/"), nil
}

// get returns the body for url+params, served from the cache when fresh.
// Concurrent identical requests share one upstream call.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	if c.key == "" {
		return nil, ErrMissingAPIKey
	}
	key := cache.Key(endpoint, params)

	if c.cache != nil {
		data, err := c.cache.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("Cache read failed", "error", err)
		}
	}

	// The shared call outlives any single caller's cancellation.
	v, err, _ := c.sf.Do(key, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), endpoint, params)
	})
	if err != nil {
		return nil, err
	}
	data := v.([]byte)

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, data, c.cacheTTL); err != nil {
			slog.Warn("Cache write failed", "error", err)
		}
	}
	return data, nil
}

// fetch performs the GET, retrying transport errors and retryable statuses
// with exponential backoff.
func (c *Client) fetch(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		body, err := c.do(ctx, endpoint, params)
		if err == nil {
			return body, nil
		}
		lastErr = err

		var se *StatusError
		if errors.As(err, &se) && !se.Retryable() {
			return nil, err
		}
		if ctx.Err() != nil || attempt == c.retries {
			break
		}
		delay := c.backoff * time.Duration(1<<attempt)
		slog.Warn("API-Sports request failed, retrying", "url", endpoint, "attempt", attempt+1, "delay", delay, "error", err)
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set(keyHeader, c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	slog.Debug("API-Sports request", "url", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
