package models

import "time"

// SnapshotRow is one stored price: one row per (fixture, bookmaker, slot, outcome).
type SnapshotRow struct {
	RunID      string    `json:"run_id"`
	League     string    `json:"league"`
	FixtureID  int       `json:"fixture_id"`
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	StartTime  time.Time `json:"start_time"`
	Bookmaker  string    `json:"bookmaker"`
	Slot       string    `json:"slot"`    // moneyline, spread, total, half_total, quarter_total or a prop alias
	Outcome    string    `json:"outcome"` // home, away, draw, over, under, or the prop label
	Line       *float64  `json:"line"`    // nil for moneyline
	Price      float64   `json:"price"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Key returns the row's conflict key within a fixture/bookmaker.
func (r SnapshotRow) Key() string {
	return r.Slot + ":" + r.Outcome
}

// SnapshotRows flattens normalized odds into storage rows. Outcomes without a
// price are skipped. Prop entries of the same alias are keyed by label and
// period; a repeated label keeps the first entry.
func SnapshotRows(base SnapshotRow, odds *NormalizedOdds) []SnapshotRow {
	if odds == nil {
		return nil
	}
	if odds.Bookmaker != nil && base.Bookmaker == "" {
		base.Bookmaker = odds.Bookmaker.Name
	}

	var rows []SnapshotRow
	add := func(slot, outcome string, line, price *float64) {
		if price == nil {
			return
		}
		r := base
		r.Slot = slot
		r.Outcome = outcome
		r.Line = line
		r.Price = *price
		rows = append(rows, r)
	}

	if ml := odds.Moneyline; ml != nil {
		add("moneyline", "home", nil, ml.Home)
		add("moneyline", "away", nil, ml.Away)
		add("moneyline", "draw", nil, ml.Draw)
	}
	if sp := odds.Spread; sp != nil {
		add("spread", "home", sp.Line, sp.HomePrice)
		add("spread", "away", sp.Line, sp.AwayPrice)
	}
	for _, t := range []struct {
		slot  string
		total *Total
	}{
		{"total", odds.Total},
		{"half_total", odds.HalfTotal},
		{"quarter_total", odds.QuarterTotal},
	} {
		if t.total == nil {
			continue
		}
		add(t.slot, "over", t.total.Line, t.total.OverPrice)
		add(t.slot, "under", t.total.Line, t.total.UnderPrice)
	}

	for _, alias := range sortedKeys(odds.Props) {
		seen := make(map[string]bool)
		for _, p := range odds.Props[alias] {
			outcome := p.Label
			if p.Period != "" && p.Period != "game" {
				outcome = p.Period + " " + p.Label
			}
			if seen[outcome] {
				continue
			}
			seen[outcome] = true
			add(alias, outcome, p.Line, p.Price)
		}
	}
	return rows
}
