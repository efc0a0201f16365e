package server

import (
	"net/http"
	"strings"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
)

// handleInjuries passes the provider's injuries list through. Basketball
// leagues answer 501; american football needs team or player; soccer needs
// league_id and season.
func (s *Server) handleInjuries(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	if league.Family() == enums.FamilyBasketball {
		respondJSON(w, http.StatusNotImplemented, ErrorResponse{Message: "Injuries are not provided for NBA/NCAAB.", Input: league.String()})
		return
	}

	opts := apisports.InjuryOptions{Season: strings.TrimSpace(r.URL.Query().Get("season"))}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"team", &opts.Team}, {"player", &opts.Player}, {"league_id", &opts.LeagueID}} {
		n, _, err := intParam(r, p.name)
		if err != nil {
			respondParamError(w, err)
			return
		}
		*p.dst = n
	}

	switch league.Family() {
	case enums.FamilySoccer:
		if opts.LeagueID == 0 || apisports.NormalizeSeason(league, opts.Season) == "" {
			respondParamError(w, badParam("Soccer injuries require league_id and season", nil, []string{"league_id", "season"}))
			return
		}
	default:
		if opts.Team == 0 && opts.Player == 0 {
			respondParamError(w, badParam("Injuries require at least one of: team or player", nil, []string{"team", "player"}))
			return
		}
	}

	body, err := s.provider.Injuries(r.Context(), league, opts)
	if err != nil {
		respondProviderError(w, err)
		return
	}
	respondRaw(w, body)
}

type snapshotsResponse struct {
	League    string               `json:"league"`
	FixtureID int                  `json:"fixture_id"`
	Count     int                  `json:"count"`
	Rows      []models.SnapshotRow `json:"rows"`
}

// handleSnapshots returns the stored snapshot rows of one fixture.
func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	if s.snapshots == nil {
		respondJSON(w, http.StatusNotImplemented, ErrorResponse{Message: "snapshot storage is not configured"})
		return
	}
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	fixtureID, ok, err := intParam(r, "fixture_id")
	if err == nil && !ok {
		err = badParam("Missing fixture_id", nil, "positive integer")
	}
	if err != nil {
		respondParamError(w, err)
		return
	}

	rows, err := s.snapshots.GetSnapshots(r.Context(), league.String(), fixtureID)
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Message: err.Error()})
		return
	}
	if rows == nil {
		rows = []models.SnapshotRow{}
	}
	respondJSON(w, http.StatusOK, snapshotsResponse{
		League:    league.String(),
		FixtureID: fixtureID,
		Count:     len(rows),
		Rows:      rows,
	})
}
