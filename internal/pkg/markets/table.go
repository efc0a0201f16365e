// Package markets holds the market alias table and the classifier that turns a
// provider market node (numeric bet id + display name) into a semantic alias and period.
package markets

import (
	"sort"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

// BetMeta is the id-path entry: which alias a provider bet id means and the periods it covers.
type BetMeta struct {
	Alias   enums.MarketAlias
	Periods []enums.Period
}

// NameRule maps an alias to the keywords that identify it in a market display name.
type NameRule struct {
	Alias    enums.MarketAlias
	Keywords []string
}

// PeriodRule maps a period to the keywords that identify it in a market display name.
type PeriodRule struct {
	Period   enums.Period
	Keywords []string
}

// Table is the static configuration used by Classify. Rules are ordered: the first
// rule whose keyword is found wins. A Table is read-only after construction and is
// shared across goroutines without locking.
type Table struct {
	Bets        map[enums.League]map[int]BetMeta
	NameRules   []NameRule
	PeriodRules []PeriodRule
}

// Lookup returns the id-path entry for a league's bet id.
func (t *Table) Lookup(league enums.League, betID int) (BetMeta, bool) {
	if t == nil {
		return BetMeta{}, false
	}
	bets, ok := t.Bets[league]
	if !ok {
		return BetMeta{}, false
	}
	meta, ok := bets[betID]
	return meta, ok
}

// betIDs returns a league's bet ids in ascending order so reverse lookups are deterministic.
func (t *Table) betIDs(league enums.League) []int {
	bets := t.Bets[league]
	ids := make([]int, 0, len(bets))
	for id := range bets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ResolveBetID maps an (alias, period) pair back to a provider bet id, used to
// forward a "bet" filter to the provider. Exact alias+period wins over alias-only.
func (t *Table) ResolveBetID(league enums.League, alias enums.MarketAlias, period enums.Period) (int, bool) {
	if t == nil || alias == "" {
		return 0, false
	}
	if period == "" {
		period = enums.PeriodGame
	}
	ids := t.betIDs(league)
	for _, id := range ids {
		meta := t.Bets[league][id]
		if meta.Alias == alias && containsPeriod(periodsOrGame(meta.Periods), period) {
			return id, true
		}
	}
	for _, id := range ids {
		if t.Bets[league][id].Alias == alias {
			return id, true
		}
	}
	return 0, false
}

func periodsOrGame(periods []enums.Period) []enums.Period {
	if len(periods) == 0 {
		return []enums.Period{enums.PeriodGame}
	}
	return periods
}

func containsPeriod(periods []enums.Period, p enums.Period) bool {
	for _, x := range periods {
		if x == p {
			return true
		}
	}
	return false
}

func v1Bets(withHalves bool) map[int]BetMeta {
	g12 := []enums.Period{enums.PeriodGame, enums.Period1H, enums.Period2H}
	bets := map[int]BetMeta{
		1:  {Alias: enums.Moneyline, Periods: []enums.Period{enums.PeriodGame}},
		2:  {Alias: enums.Spread, Periods: g12},
		47: {Alias: enums.Spread, Periods: []enums.Period{enums.Period1Q}},
		48: {Alias: enums.Spread, Periods: []enums.Period{enums.Period2Q}},
		49: {Alias: enums.Spread, Periods: []enums.Period{enums.Period3Q}},
		50: {Alias: enums.Spread, Periods: []enums.Period{enums.Period4Q}},
		3:  {Alias: enums.Total, Periods: g12},
		61: {Alias: enums.Total, Periods: []enums.Period{enums.Period1Q}},
		62: {Alias: enums.Total, Periods: []enums.Period{enums.Period2Q}},
		63: {Alias: enums.Total, Periods: []enums.Period{enums.Period3Q}},
		64: {Alias: enums.Total, Periods: []enums.Period{enums.Period4Q}},
	}
	if withHalves {
		bets[51] = BetMeta{Alias: enums.Spread, Periods: []enums.Period{enums.Period1H}}
		bets[52] = BetMeta{Alias: enums.Spread, Periods: []enums.Period{enums.Period2H}}
		bets[65] = BetMeta{Alias: enums.Total, Periods: []enums.Period{enums.Period1H}}
		bets[66] = BetMeta{Alias: enums.Total, Periods: []enums.Period{enums.Period2H}}
	}
	return bets
}

// DefaultTable returns a fresh copy of the built-in table.
func DefaultTable() *Table {
	game := []enums.Period{enums.PeriodGame}
	g12 := []enums.Period{enums.PeriodGame, enums.Period1H, enums.Period2H}
	return &Table{
		Bets: map[enums.League]map[int]BetMeta{
			enums.NFL:   v1Bets(true),
			enums.NCAAF: v1Bets(false),
			enums.NBA:   v1Bets(false),
			enums.NCAAB: {
				1: {Alias: enums.Moneyline, Periods: game},
				2: {Alias: enums.Spread, Periods: g12},
				3: {Alias: enums.Total, Periods: g12},
			},
			// API-Football v3 bet ids.
			enums.Soccer: {
				1:  {Alias: enums.Moneyline, Periods: game},
				3:  {Alias: enums.Moneyline, Periods: []enums.Period{enums.Period2H}},
				13: {Alias: enums.Moneyline, Periods: []enums.Period{enums.Period1H}},
				4:  {Alias: enums.Spread, Periods: game},
				5:  {Alias: enums.Total, Periods: game},
				6:  {Alias: enums.Total, Periods: []enums.Period{enums.Period1H}},
			},
		},
		NameRules: []NameRule{
			{Alias: "team_total", Keywords: []string{"team total", "home total", "away total"}},
			{Alias: "player_points", Keywords: []string{"player points"}},
			{Alias: "player_rebounds", Keywords: []string{"player rebounds"}},
			{Alias: "player_assists", Keywords: []string{"player assists"}},
			{Alias: "player_threes", Keywords: []string{"player threes", "player 3-pointers"}},
			{Alias: "player_passing_yards", Keywords: []string{"passing yards"}},
			{Alias: "player_rushing_yards", Keywords: []string{"rushing yards"}},
			{Alias: "player_receiving_yards", Keywords: []string{"receiving yards"}},
			{Alias: "anytime_touchdown", Keywords: []string{"anytime td", "anytime touchdown"}},
			{Alias: "anytime_goalscorer", Keywords: []string{"anytime goalscorer", "anytime goal scorer"}},
			{Alias: enums.Moneyline, Keywords: []string{"moneyline", "ml", "1x2", "winner", "match odds", "match result", "full time result", "3way result", "home/away"}},
			{Alias: enums.Spread, Keywords: []string{"spread", "handicap", "asian handicap", "line handicap", "point spread", "run line", "goal line"}},
			{Alias: enums.Total, Keywords: []string{"total", "over/under", "o/u", "totals", "points total", "game total", "goals over/under"}},
		},
		PeriodRules: []PeriodRule{
			{Period: enums.Period1Q, Keywords: []string{"1st quarter", "1q", "first quarter"}},
			{Period: enums.Period2Q, Keywords: []string{"2nd quarter", "2q", "second quarter"}},
			{Period: enums.Period3Q, Keywords: []string{"3rd quarter", "3q", "third quarter"}},
			{Period: enums.Period4Q, Keywords: []string{"4th quarter", "4q", "fourth quarter"}},
			{Period: enums.Period1H, Keywords: []string{"1st half", "1h", "first half"}},
			{Period: enums.Period2H, Keywords: []string{"2nd half", "2h", "second half"}},
			{Period: enums.PeriodGame, Keywords: []string{"full game", "full time", "match", "regular time", "ft", "game", "all quarters", "90 minutes"}},
		},
	}
}
