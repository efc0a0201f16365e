package enums

import "strings"

// MarketAlias is the semantic name of a market. The core aliases are
// moneyline, spread and total; anything else is treated as a prop.
type MarketAlias string

const (
	Moneyline MarketAlias = "moneyline"
	Spread    MarketAlias = "spread"
	Total     MarketAlias = "total"
)

// IsCore reports whether the alias maps to a fixed slot of the normalized odds.
func (a MarketAlias) IsCore() bool {
	switch a {
	case Moneyline, Spread, Total:
		return true
	default:
		return false
	}
}

func (a MarketAlias) String() string {
	return string(a)
}

// Period is the game segment a market applies to.
type Period string

const (
	PeriodGame Period = "game"
	Period1H   Period = "1h"
	Period2H   Period = "2h"
	Period1Q   Period = "1q"
	Period2Q   Period = "2q"
	Period3Q   Period = "3q"
	Period4Q   Period = "4q"
)

// IsValid checks if period is known
func (p Period) IsValid() bool {
	switch p {
	case PeriodGame, Period1H, Period2H, Period1Q, Period2Q, Period3Q, Period4Q:
		return true
	default:
		return false
	}
}

// IsHalf reports 1h/2h.
func (p Period) IsHalf() bool {
	return p == Period1H || p == Period2H
}

// IsQuarter reports 1q..4q.
func (p Period) IsQuarter() bool {
	switch p {
	case Period1Q, Period2Q, Period3Q, Period4Q:
		return true
	default:
		return false
	}
}

func (p Period) String() string {
	return string(p)
}

// ParsePeriod parses a period; empty input yields PeriodGame.
func ParsePeriod(s string) (Period, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PeriodGame, true
	}
	p := Period(s)
	return p, p.IsValid()
}
