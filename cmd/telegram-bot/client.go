package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Vodeneev/oddsline/internal/pkg/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// apiClient calls the oddsline HTTP API.
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("oddsline returned status %d", e.Status)
}

// oddsReply covers both /data/odds answers: odds for a picked fixture, or a
// resolution body when no fixture was picked.
type oddsReply struct {
	FixtureID    *int                      `json:"fixture_id"`
	Odds         *models.NormalizedOdds    `json:"odds"`
	Candidates   []models.FixtureCandidate `json:"candidates"`
	PickedReason string                    `json:"picked_reason"`
}

type bookmakerReply struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Markets int    `json:"markets"`
}

// get decodes a 200 into out. A 409 is decoded into conflict when given.
func (c *apiClient) get(ctx context.Context, path string, params url.Values, out, conflict any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to oddsline: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.StatusCode, json.Unmarshal(body, out)
	case resp.StatusCode == http.StatusConflict && conflict != nil:
		return resp.StatusCode, json.Unmarshal(body, conflict)
	}
	var e struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &e)
	return resp.StatusCode, &apiError{Status: resp.StatusCode, Message: e.Message}
}

// Odds returns odds for the fixture matching the query. When no fixture was
// picked the reply has nil Odds and carries the candidates.
func (c *apiClient) Odds(ctx context.Context, q matchQuery) (*oddsReply, error) {
	params := url.Values{"league": {q.League}, "date": {q.Date}, "home": {q.Home}, "away": {q.Away}}
	var reply oddsReply
	if _, err := c.get(ctx, "/data/odds", params, &reply, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

func (c *apiClient) Resolve(ctx context.Context, q matchQuery) (*models.ResolutionResult, error) {
	params := url.Values{"league": {q.League}, "date": {q.Date}, "home": {q.Home}, "away": {q.Away}}
	var res models.ResolutionResult
	if _, err := c.get(ctx, "/data/resolve", params, &res, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *apiClient) Bookmakers(ctx context.Context, league string, fixtureID int) ([]bookmakerReply, error) {
	params := url.Values{"league": {league}, "fixture_id": {fmt.Sprint(fixtureID)}}
	var out struct {
		Bookmakers []bookmakerReply `json:"bookmakers"`
	}
	if _, err := c.get(ctx, "/data/debug/bookmakers", params, &out, nil); err != nil {
		return nil, err
	}
	return out.Bookmakers, nil
}
