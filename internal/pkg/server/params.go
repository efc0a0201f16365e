package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

// paramError is a 422 with the offending input and what was expected.
type paramError struct {
	resp ErrorResponse
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s: %v", e.resp.Message, e.resp.Input)
}

func badParam(message string, input, expected any) error {
	return &paramError{resp: ErrorResponse{Message: message, Input: input, Expected: expected}}
}

func respondParamError(w http.ResponseWriter, err error) {
	if pe, ok := err.(*paramError); ok {
		respondJSON(w, http.StatusUnprocessableEntity, pe.resp)
		return
	}
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Message: err.Error()})
}

func leagueParam(r *http.Request) (enums.League, error) {
	raw := r.URL.Query().Get("league")
	league, ok := enums.ParseLeague(raw)
	if !ok {
		return "", badParam("Invalid league", raw, enums.LeagueNames())
	}
	return league, nil
}

// intParam returns (value, present, error).
func intParam(r *http.Request, name string) (int, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false, badParam("Invalid "+name, raw, "positive integer")
	}
	return n, true, nil
}

func dateParam(r *http.Request, name string, required bool) (string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		if required {
			return "", badParam("Missing "+name, nil, "YYYY-MM-DD")
		}
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return "", badParam("Invalid "+name, raw, "YYYY-MM-DD")
	}
	return raw, nil
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}

// listOptions reads season and league_id.
func listOptions(r *http.Request) (apisports.ListOptions, error) {
	opts := apisports.ListOptions{Season: strings.TrimSpace(r.URL.Query().Get("season"))}
	lid, _, err := intParam(r, "league_id")
	if err != nil {
		return opts, err
	}
	opts.LeagueID = lid
	return opts, nil
}

func optionalInt(n int, ok bool) *int {
	if !ok {
		return nil
	}
	return &n
}
