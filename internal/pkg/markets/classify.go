package markets

import (
	"strings"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

// Classification is the classifier output. An empty Alias means the market is
// unknown and should be skipped.
type Classification struct {
	Alias  enums.MarketAlias
	Period enums.Period
}

// Known reports whether the market was recognised.
func (c Classification) Known() bool {
	return c.Alias != ""
}

// Classify determines the alias and period of one market node. The id path is
// tried first; bookmaker-specific ids that are missing from the table fall back
// to case-insensitive keyword matching on the display name. Pure and stateless.
func (t *Table) Classify(league enums.League, betID *int, name string) Classification {
	lower := strings.ToLower(strings.TrimSpace(name))
	period := t.inferPeriod(lower)

	if betID != nil {
		if meta, ok := t.Lookup(league, *betID); ok {
			periods := periodsOrGame(meta.Periods)
			if !containsPeriod(periods, period) {
				period = periods[0]
			}
			return Classification{Alias: meta.Alias, Period: period}
		}
	}

	if lower == "" {
		return Classification{Period: period}
	}
	return Classification{Alias: t.inferAlias(lower), Period: period}
}

func (t *Table) inferAlias(lower string) enums.MarketAlias {
	if t == nil {
		return ""
	}
	for _, rule := range t.NameRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Alias
		}
	}
	return ""
}

func (t *Table) inferPeriod(lower string) enums.Period {
	if t == nil || lower == "" {
		return enums.PeriodGame
	}
	for _, rule := range t.PeriodRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Period
		}
	}
	return enums.PeriodGame
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
