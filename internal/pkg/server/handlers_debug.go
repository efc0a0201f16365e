package server

import (
	"net/http"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

type bookmakerInfo struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Markets int    `json:"markets"`
}

// handleDebugBookmakers lists the bookmakers present for a fixture.
func (s *Server) handleDebugBookmakers(w http.ResponseWriter, r *http.Request) {
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

	body, err := s.provider.OddsForFixture(r.Context(), league, fixtureID, apisports.OddsOptions{})
	if err != nil {
		respondProviderError(w, err)
		return
	}
	p, err := payload.DecodeOdds(body)
	if err != nil {
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		return
	}

	books := make([]bookmakerInfo, 0, len(p.Bookmakers))
	for _, b := range p.Bookmakers {
		books = append(books, bookmakerInfo{ID: b.ID, Name: b.Name, Markets: len(b.Markets)})
	}
	respondJSON(w, http.StatusOK, map[string]any{"fixture_id": fixtureID, "bookmakers": books})
}

// handleDebugMarkets lists one bookmaker's markets with their classification.
func (s *Server) handleDebugMarkets(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	fixtureID, okFixture, err := intParam(r, "fixture_id")
	if err != nil {
		respondParamError(w, err)
		return
	}
	bookmakerID, okBook, err := intParam(r, "bookmaker_id")
	if err != nil {
		respondParamError(w, err)
		return
	}
	if !okFixture || !okBook {
		respondParamError(w, badParam("fixture_id and bookmaker_id are required", nil, "positive integers"))
		return
	}

	body, err := s.provider.OddsForFixture(r.Context(), league, fixtureID, apisports.OddsOptions{Bookmaker: bookmakerID})
	if err != nil {
		respondProviderError(w, err)
		return
	}
	p, err := payload.DecodeOdds(body)
	if err != nil {
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		return
	}

	markets := []odds.MarketInfo{}
	for i := range p.Bookmakers {
		if p.Bookmakers[i].ID == bookmakerID {
			markets = s.normalizer.DescribeMarkets(&p.Bookmakers[i], league)
			break
		}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"fixture_id":   fixtureID,
		"bookmaker_id": bookmakerID,
		"markets":      markets,
	})
}
