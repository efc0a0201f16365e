// Package odds turns a provider odds payload into models.NormalizedOdds.
package odds

import (
	"log/slog"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/markets"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

// Options tune one normalization call. An empty League disables the bet-id
// path and classifies by market name only.
type Options struct {
	League               enums.League
	PreferredBookmakerID *int
}

// Normalizer is safe for concurrent use; the market table is never mutated.
type Normalizer struct {
	table *markets.Table
}

// NewNormalizer creates a normalizer over the given market table (the built-in
// table when nil).
func NewNormalizer(table *markets.Table) *Normalizer {
	if table == nil {
		table = markets.DefaultTable()
	}
	return &Normalizer{table: table}
}

// Table returns the market table in use.
func (n *Normalizer) Table() *markets.Table {
	return n.table
}

// NormalizeJSON decodes body and normalizes it. Only undecodable JSON fails.
func (n *Normalizer) NormalizeJSON(body []byte, opts Options) (*models.NormalizedOdds, error) {
	p, err := payload.DecodeOdds(body)
	if err != nil {
		return nil, err
	}
	return n.Normalize(p, opts), nil
}

// Normalize maps the selected bookmaker's markets into the fixed slots. Markets
// are visited in declaration order and the first market claiming a slot wins,
// even when its rows turn out uninformative.
func (n *Normalizer) Normalize(p *payload.Odds, opts Options) *models.NormalizedOdds {
	out := models.NewNormalizedOdds()
	if p == nil {
		return out
	}
	bm := SelectBookmaker(p.Bookmakers, opts.PreferredBookmakerID)
	if bm == nil {
		return out
	}
	out.Bookmaker = &models.BookmakerRef{ID: bm.ID, Name: bm.Name}

	claimed := make(map[string]bool)
	for _, m := range bm.Markets {
		c := n.table.Classify(opts.League, m.ID, m.Name)
		if !c.Known() {
			slog.Debug("Skipping unknown market", "bookmaker", bm.Name, "market", m.Name)
			continue
		}
		slot := slotFor(c)
		if claimed[slot] {
			continue
		}
		claimed[slot] = true

		switch slot {
		case "moneyline":
			out.Moneyline = MapMoneyline(m.Outcomes)
		case "spread":
			out.Spread = MapSpread(m.Outcomes)
		case "total":
			out.Total = MapTotal(m.Outcomes)
		case "half_total":
			out.HalfTotal = MapTotal(m.Outcomes)
		case "quarter_total":
			out.QuarterTotal = MapTotal(m.Outcomes)
		default:
			if entries := propEntries(m.Outcomes, c.Period.String()); len(entries) > 0 {
				key := propKey(c)
				out.Props[key] = append(out.Props[key], entries...)
			}
		}
	}
	return out
}

// slotFor names the output slot of a classified market. Props are claimed per
// alias and period so a 1q and a 2q version of the same prop both survive.
func slotFor(c markets.Classification) string {
	switch c.Alias {
	case enums.Moneyline, enums.Spread:
		if c.Period == enums.PeriodGame {
			return c.Alias.String()
		}
	case enums.Total:
		switch {
		case c.Period == enums.PeriodGame:
			return "total"
		case c.Period.IsHalf():
			return "half_total"
		case c.Period.IsQuarter():
			return "quarter_total"
		}
	}
	return "prop:" + propKey(c) + ":" + c.Period.String()
}

// propKey is the props map key: the alias, suffixed with the period for core
// markets on a period without a dedicated slot (e.g. "spread_1h").
func propKey(c markets.Classification) string {
	if c.Alias.IsCore() && c.Period != enums.PeriodGame {
		return c.Alias.String() + "_" + c.Period.String()
	}
	return c.Alias.String()
}

// MarketInfo describes one market as the classifier sees it.
type MarketInfo struct {
	ID     *int   `json:"id"`
	Name   string `json:"name"`
	Alias  string `json:"alias"`
	Period string `json:"period"`
}

// DescribeMarkets lists a bookmaker's markets with their classification.
// Unknown markets are listed with an empty alias.
func (n *Normalizer) DescribeMarkets(bm *payload.Bookmaker, league enums.League) []MarketInfo {
	if bm == nil {
		return nil
	}
	out := make([]MarketInfo, 0, len(bm.Markets))
	for _, m := range bm.Markets {
		c := n.table.Classify(league, m.ID, m.Name)
		out = append(out, MarketInfo{ID: m.ID, Name: m.Name, Alias: c.Alias.String(), Period: c.Period.String()})
	}
	return out
}
