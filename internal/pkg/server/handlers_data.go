package server

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

// historyConcurrency bounds parallel odds lookups in /data/history.
const historyConcurrency = 4

type oddsResponse struct {
	League     string                   `json:"league"`
	FixtureID  int                      `json:"fixture_id"`
	Odds       *models.NormalizedOdds   `json:"odds"`
	Resolution *models.ResolutionResult `json:"resolution,omitempty"`
}

type historyResponse struct {
	League string                  `json:"league"`
	Range  [2]string               `json:"range"`
	Count  int                     `json:"count"`
	Items  []models.FixtureSummary `json:"items"`
}

func (s *Server) handleLeagues(w http.ResponseWriter, r *http.Request) {
	type leagueInfo struct {
		League   string `json:"league"`
		Name     string `json:"name"`
		Family   string `json:"family"`
		LeagueID int    `json:"league_id"`
	}
	var out []leagueInfo
	for _, l := range enums.GetAllLeagues() {
		info := l.GetLeagueInfo()
		out = append(out, leagueInfo{League: l.String(), Name: info.Name, Family: string(info.Family), LeagueID: info.LeagueID})
	}
	respondJSON(w, http.StatusOK, map[string]any{"leagues": out})
}

// resolveQuery runs the resolver for league+date+home/away.
func (s *Server) resolveQuery(ctx context.Context, r *http.Request, league enums.League) (models.ResolutionResult, error) {
	date, err := dateParam(r, "date", true)
	if err != nil {
		return models.ResolutionResult{}, err
	}
	opts, err := listOptions(r)
	if err != nil {
		return models.ResolutionResult{}, err
	}
	fx, err := s.provider.FixturesByDate(ctx, league, date, opts)
	if err != nil {
		return models.ResolutionResult{}, err
	}
	q := r.URL.Query()
	return s.resolver.Resolve(fx.Items, q.Get("home"), q.Get("away")), nil
}

// handleResolve answers 200 with the picked fixture, 409 with candidates when
// the caller has to choose, and 200 with an empty list when there is nothing to pick.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	res, err := s.resolveQuery(r.Context(), r, league)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, resolutionStatus(res), res)
}

func resolutionStatus(res models.ResolutionResult) int {
	if !res.Resolved() && len(res.Candidates) > 0 {
		return http.StatusConflict
	}
	return http.StatusOK
}

// handleOdds serves normalized (or raw) odds for fixture_id, or for the
// fixture resolved from date+home/away.
func (s *Server) handleOdds(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	fixtureID, hasID, err := intParam(r, "fixture_id")
	if err != nil {
		respondParamError(w, err)
		return
	}
	bookmakerID, hasBook, err := intParam(r, "bookmaker_id")
	if err != nil {
		respondParamError(w, err)
		return
	}
	betID, err := s.betFilter(r, league)
	if err != nil {
		respondParamError(w, err)
		return
	}

	var resolution *models.ResolutionResult
	if !hasID {
		q := r.URL.Query()
		if strings.TrimSpace(q.Get("home")) == "" && strings.TrimSpace(q.Get("away")) == "" {
			respondParamError(w, badParam("fixture_id or date with home/away is required", nil, nil))
			return
		}
		res, err := s.resolveQuery(r.Context(), r, league)
		if err != nil {
			s.respondError(w, err)
			return
		}
		if !res.Resolved() {
			respondJSON(w, resolutionStatus(res), res)
			return
		}
		fixtureID = *res.FixtureID
		resolution = &res
	}

	body, err := s.provider.OddsForFixture(r.Context(), league, fixtureID, apisports.OddsOptions{Bookmaker: bookmakerID, Bet: betID})
	if err != nil {
		respondProviderError(w, err)
		return
	}
	if boolParam(r, "raw") {
		respondRaw(w, body)
		return
	}

	normalized, err := s.normalizer.NormalizeJSON(body, odds.Options{League: league, PreferredBookmakerID: optionalInt(bookmakerID, hasBook)})
	if err != nil {
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Message: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, oddsResponse{
		League:     league.String(),
		FixtureID:  fixtureID,
		Odds:       normalized,
		Resolution: resolution,
	})
}

// betFilter maps market+period to the provider bet id. No market means no filter.
func (s *Server) betFilter(r *http.Request, league enums.League) (int, error) {
	q := r.URL.Query()
	market := strings.ToLower(strings.TrimSpace(q.Get("market")))
	if market == "" {
		return 0, nil
	}
	period, ok := enums.ParsePeriod(q.Get("period"))
	if !ok {
		return 0, badParam("Invalid period", q.Get("period"), []string{"game", "1h", "2h", "1q", "2q", "3q", "4q"})
	}
	id, ok := s.normalizer.Table().ResolveBetID(league, enums.MarketAlias(market), period)
	if !ok {
		return 0, badParam("Unknown market for league", market, nil)
	}
	return id, nil
}

func (s *Server) handleBetID(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	id, err := s.betFilter(r, league)
	if err != nil {
		respondParamError(w, err)
		return
	}
	if id == 0 {
		respondParamError(w, badParam("Missing market", nil, nil))
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"league": league.String(),
		"market": strings.ToLower(strings.TrimSpace(r.URL.Query().Get("market"))),
		"bet_id": id,
	})
}

// handleHistory lists fixtures in a date window with final scores and,
// with include_odds=true, normalized odds for up to MaxOddsLookups fixtures.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	from, err := dateParam(r, "start_date", true)
	if err != nil {
		respondParamError(w, err)
		return
	}
	to, err := dateParam(r, "end_date", true)
	if err != nil {
		respondParamError(w, err)
		return
	}
	if to < from {
		respondParamError(w, badParam("end_date is before start_date", []string{from, to}, nil))
		return
	}
	opts, err := listOptions(r)
	if err != nil {
		respondParamError(w, err)
		return
	}
	bookmakerID, hasBook, err := intParam(r, "bookmaker_id")
	if err != nil {
		respondParamError(w, err)
		return
	}
	maxLookups := s.cfg.MaxOddsLookups
	if n, ok, err := intParam(r, "max_odds_lookups"); err != nil {
		respondParamError(w, err)
		return
	} else if ok && n < maxLookups {
		maxLookups = n
	}

	fx, err := s.provider.FixturesRange(r.Context(), league, from, to, opts)
	if err != nil {
		respondProviderError(w, err)
		return
	}

	items := make([]models.FixtureSummary, 0, len(fx.Items))
	for _, node := range fx.Items {
		f, ok := payload.ExtractFixture(node)
		if !ok {
			continue
		}
		items = append(items, models.FixtureSummary{
			FixtureID: f.ID,
			Date:      f.Date,
			Home:      f.Home,
			Away:      f.Away,
			Status:    f.Status,
			Score:     f.Score,
		})
	}

	if boolParam(r, "include_odds") {
		s.attachOdds(r.Context(), league, items, maxLookups, optionalInt(bookmakerID, hasBook))
	}

	respondJSON(w, http.StatusOK, historyResponse{
		League: league.String(),
		Range:  [2]string{from, to},
		Count:  len(items),
		Items:  items,
	})
}

// attachOdds fills Odds for the first limit items. A failed lookup leaves Odds nil.
func (s *Server) attachOdds(ctx context.Context, league enums.League, items []models.FixtureSummary, limit int, preferred *int) {
	if limit > len(items) {
		limit = len(items)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(historyConcurrency)
	for i := 0; i < limit; i++ {
		i := i
		g.Go(func() error {
			body, err := s.provider.OddsForFixture(gctx, league, items[i].FixtureID, apisports.OddsOptions{})
			if err != nil {
				return nil
			}
			normalized, err := s.normalizer.NormalizeJSON(body, odds.Options{League: league, PreferredBookmakerID: preferred})
			if err != nil {
				return nil
			}
			items[i].Odds = normalized
			return nil
		})
	}
	_ = g.Wait()
}

// respondError picks 422 for parameter errors and defers to provider mapping otherwise.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	if _, ok := err.(*paramError); ok {
		respondParamError(w, err)
		return
	}
	respondProviderError(w, err)
}
