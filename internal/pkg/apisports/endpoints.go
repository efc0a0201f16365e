package apisports

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

// ListOptions are optional filters for fixture lists.
type ListOptions struct {
	Season   string // "2024" or, for basketball, "2024-2025"
	LeagueID int    // overrides the configured league id
	Limit    int    // stop after this many fixtures; 0 means no limit
}

// OddsOptions are the provider-side filters forwarded to the odds endpoint.
type OddsOptions struct {
	Bookmaker int
	Bet       int
}

// InjuryOptions filter the injuries endpoint. American football needs Team or
// Player; soccer needs LeagueID and Season.
type InjuryOptions struct {
	LeagueID int
	Season   string
	Team     int
	Player   int
}

// fixturesPath is /fixtures for API-Football and /games for the v1 APIs.
func fixturesPath(league enums.League) string {
	if league.Family() == enums.FamilySoccer {
		return "fixtures"
	}
	return "games"
}

// fixtureParam names the fixture id parameter of the odds endpoint.
func fixtureParam(league enums.League) string {
	if league.Family() == enums.FamilySoccer {
		return "fixture"
	}
	return "game"
}

// NormalizeSeason returns the season as the provider wants it: basketball
// takes the starting year of "2024-2025"; every league keeps digits only.
func NormalizeSeason(league enums.League, season string) string {
	s := strings.TrimSpace(season)
	if league.Family() == enums.FamilyBasketball {
		if i := strings.Index(s, "-"); i >= 0 {
			s = s[:i]
		}
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Client) listParams(league enums.League, opts ListOptions) map[string]string {
	lid := opts.LeagueID
	if lid <= 0 {
		lid = c.leagueIDs[league]
	}
	params := map[string]string{"league": strconv.Itoa(lid)}
	if s := NormalizeSeason(league, opts.Season); s != "" {
		params["season"] = s
	}
	return params
}

// FixturesByDate lists a league's fixtures on one date (YYYY-MM-DD).
func (c *Client) FixturesByDate(ctx context.Context, league enums.League, date string, opts ListOptions) (*payload.Fixtures, error) {
	params := c.listParams(league, opts)
	params["date"] = date
	return c.list(ctx, league, params, opts.Limit)
}

// FixturesRange lists a league's fixtures between two dates, inclusive.
func (c *Client) FixturesRange(ctx context.Context, league enums.League, from, to string, opts ListOptions) (*payload.Fixtures, error) {
	params := c.listParams(league, opts)
	params["from"] = from
	params["to"] = to
	return c.list(ctx, league, params, opts.Limit)
}

// list follows paging.current/total up to the page cap. The first request is
// sent without a page parameter since API-Football rejects it on /fixtures.
func (c *Client) list(ctx context.Context, league enums.League, params map[string]string, limit int) (*payload.Fixtures, error) {
	endpoint, err := c.endpoint(league, fixturesPath(league))
	if err != nil {
		return nil, err
	}

	out := &payload.Fixtures{}
	for page := 1; page <= c.maxPages; page++ {
		p := params
		if page > 1 {
			p = make(map[string]string, len(params)+1)
			for k, v := range params {
				p[k] = v
			}
			p["page"] = strconv.Itoa(page)
		}

		body, err := c.get(ctx, endpoint, p)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s fixtures (page %d): %w", league, page, err)
		}
		fx, err := payload.DecodeFixtures(body)
		if err != nil {
			return nil, err
		}

		out.Items = append(out.Items, fx.Items...)
		out.Paging = fx.Paging
		if limit > 0 && len(out.Items) >= limit {
			out.Items = out.Items[:limit]
			break
		}
		if !fx.Paging.HasMore() || len(fx.Items) == 0 {
			break
		}
	}
	return out, nil
}

// OddsForFixture returns the raw odds body of one fixture/game.
func (c *Client) OddsForFixture(ctx context.Context, league enums.League, fixtureID int, opts OddsOptions) ([]byte, error) {
	endpoint, err := c.endpoint(league, "odds")
	if err != nil {
		return nil, err
	}
	params := map[string]string{fixtureParam(league): strconv.Itoa(fixtureID)}
	if opts.Bookmaker > 0 {
		params["bookmaker"] = strconv.Itoa(opts.Bookmaker)
	}
	if opts.Bet > 0 {
		params["bet"] = strconv.Itoa(opts.Bet)
	}
	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch odds for %s fixture %d: %w", league, fixtureID, err)
	}
	return body, nil
}

// Injuries returns the raw injuries body. Basketball leagues have no injuries
// endpoint and fail with ErrInjuriesUnsupported.
func (c *Client) Injuries(ctx context.Context, league enums.League, opts InjuryOptions) ([]byte, error) {
	if league.Family() == enums.FamilyBasketball {
		return nil, fmt.Errorf("%w: %s", ErrInjuriesUnsupported, league)
	}
	endpoint, err := c.endpoint(league, "injuries")
	if err != nil {
		return nil, err
	}

	params := make(map[string]string)
	if opts.Team > 0 {
		params["team"] = strconv.Itoa(opts.Team)
	}
	if opts.Player > 0 {
		params["player"] = strconv.Itoa(opts.Player)
	}
	if league.Family() == enums.FamilySoccer {
		season := NormalizeSeason(league, opts.Season)
		if opts.LeagueID <= 0 || season == "" {
			return nil, fmt.Errorf("%w: soccer injuries need league and season", ErrMissingParameter)
		}
		params["league"] = strconv.Itoa(opts.LeagueID)
		params["season"] = season
	} else if len(params) == 0 {
		return nil, fmt.Errorf("%w: %s injuries need team or player", ErrMissingParameter, league)
	}

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s injuries: %w", league, err)
	}
	return body, nil
}
