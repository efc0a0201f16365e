package odds

import (
	"strings"

	"github.com/Vodeneev/oddsline/internal/pkg/line"
	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

type side int

const (
	sideNone side = iota
	sideHome
	sideAway
	sideDraw
)

// sideOf matches a label to home/away/draw by substring or by the 1/2/X codes.
func sideOf(label string) side {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "home") || l == "1":
		return sideHome
	case strings.Contains(l, "away") || l == "2":
		return sideAway
	case strings.Contains(l, "draw") || l == "x":
		return sideDraw
	}
	return sideNone
}

// spreadSideOf also accepts "Home -3.5" / "1 -1" style labels.
func spreadSideOf(label string) side {
	if s := sideOf(label); s != sideNone {
		return s
	}
	fields := strings.Fields(strings.ToLower(label))
	if len(fields) > 1 {
		switch fields[0] {
		case "1":
			return sideHome
		case "2":
			return sideAway
		}
	}
	return sideNone
}

// MapMoneyline builds the moneyline slot. The first row per side wins. When no
// row matches a side, the first two rows are taken as home and away.
func MapMoneyline(rows []payload.Outcome) *models.Moneyline {
	var ml models.Moneyline
	matched := false
	for _, r := range rows {
		price := line.ParsePrice(r.Price)
		switch sideOf(r.Label) {
		case sideHome:
			matched = true
			if ml.Home == nil {
				ml.Home = price
			}
		case sideAway:
			matched = true
			if ml.Away == nil {
				ml.Away = price
			}
		case sideDraw:
			matched = true
			if ml.Draw == nil {
				ml.Draw = price
			}
		}
	}
	if !matched && len(rows) >= 2 {
		ml.Home = line.ParsePrice(rows[0].Price)
		ml.Away = line.ParsePrice(rows[1].Price)
	}
	if ml.Home == nil && ml.Away == nil && ml.Draw == nil {
		return nil
	}
	return &ml
}

// MapSpread builds the spread slot from home/away rows. The line is the home
// side's when it has one, else the away side's.
func MapSpread(rows []payload.Outcome) *models.Spread {
	var sp models.Spread
	var homeLine, awayLine *float64
	var seenHome, seenAway bool
	for _, r := range rows {
		switch spreadSideOf(r.Label) {
		case sideHome:
			if seenHome {
				continue
			}
			seenHome = true
			sp.HomePrice = line.ParsePrice(r.Price)
			homeLine = line.OutcomeLine(r.Line, r.Label)
		case sideAway:
			if seenAway {
				continue
			}
			seenAway = true
			sp.AwayPrice = line.ParsePrice(r.Price)
			awayLine = line.OutcomeLine(r.Line, r.Label)
		}
	}
	sp.Line = homeLine
	if sp.Line == nil {
		sp.Line = awayLine
	}
	if sp.Line == nil && sp.HomePrice == nil && sp.AwayPrice == nil {
		return nil
	}
	return &sp
}

// MapTotal builds an over/under slot. The line comes from the first over or
// under row that carries one; prices come from the first rows on that line
// (rows without a line are accepted).
func MapTotal(rows []payload.Outcome) *models.Total {
	type ou struct {
		over  bool
		price *float64
		line  *float64
	}
	var parsed []ou
	for _, r := range rows {
		l := strings.ToLower(r.Label)
		var over bool
		switch {
		case strings.Contains(l, "over"):
			over = true
		case strings.Contains(l, "under"):
		default:
			continue
		}
		parsed = append(parsed, ou{over: over, price: line.ParsePrice(r.Price), line: line.OutcomeLine(r.Line, r.Label)})
	}
	if len(parsed) == 0 {
		return nil
	}

	var t models.Total
	for _, p := range parsed {
		if p.line != nil {
			t.Line = p.line
			break
		}
	}
	var haveOver, haveUnder bool
	for _, p := range parsed {
		if t.Line != nil && p.line != nil && *p.line != *t.Line {
			continue
		}
		if p.over && !haveOver {
			haveOver = true
			t.OverPrice = p.price
		} else if !p.over && !haveUnder {
			haveUnder = true
			t.UnderPrice = p.price
		}
	}
	if t.Line == nil && t.OverPrice == nil && t.UnderPrice == nil {
		return nil
	}
	return &t
}

// propEntries keeps every row of a market that has no dedicated slot.
func propEntries(rows []payload.Outcome, period string) []models.PropEntry {
	out := make([]models.PropEntry, 0, len(rows))
	for _, r := range rows {
		price := line.ParsePrice(r.Price)
		if price == nil {
			continue
		}
		out = append(out, models.PropEntry{
			Label:  r.Label,
			Line:   line.OutcomeLine(r.Line, r.Label),
			Price:  price,
			Period: period,
		})
	}
	return out
}
