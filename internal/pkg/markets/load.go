package markets

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

type betFile struct {
	Alias   string   `yaml:"alias"`
	Periods []string `yaml:"periods"`
}

type ruleFile struct {
	Alias    string   `yaml:"alias"`
	Period   string   `yaml:"period"`
	Keywords []string `yaml:"keywords"`
}

// tableFile is the on-disk shape. Bet ids are read as strings so quoted and bare keys both work.
type tableFile struct {
	Bets        map[string]map[string]betFile `yaml:"bets"`
	NameRules   []ruleFile                    `yaml:"name_rules"`
	PeriodRules []ruleFile                    `yaml:"period_rules"`
}

// LoadTable reads a market table from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read market table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML market table. Sections that are absent keep the built-in defaults.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse market table: %w", err)
	}

	t := DefaultTable()
	if len(f.Bets) > 0 {
		t.Bets = make(map[enums.League]map[int]BetMeta, len(f.Bets))
		for leagueName, bets := range f.Bets {
			league, ok := enums.ParseLeague(leagueName)
			if !ok {
				return nil, fmt.Errorf("market table: unknown league %q", leagueName)
			}
			byID := make(map[int]BetMeta, len(bets))
			for idStr, b := range bets {
				id, err := strconv.Atoi(strings.TrimSpace(idStr))
				if err != nil {
					return nil, fmt.Errorf("market table: %s: bad bet id %q: %w", league, idStr, err)
				}
				meta, err := b.toMeta()
				if err != nil {
					return nil, fmt.Errorf("market table: %s bet %d: %w", league, id, err)
				}
				byID[id] = meta
			}
			t.Bets[league] = byID
		}
	}

	if len(f.NameRules) > 0 {
		t.NameRules = make([]NameRule, 0, len(f.NameRules))
		for i, r := range f.NameRules {
			alias := strings.ToLower(strings.TrimSpace(r.Alias))
			if alias == "" || len(r.Keywords) == 0 {
				return nil, fmt.Errorf("market table: name rule %d needs alias and keywords", i)
			}
			t.NameRules = append(t.NameRules, NameRule{Alias: enums.MarketAlias(alias), Keywords: r.Keywords})
		}
	}

	if len(f.PeriodRules) > 0 {
		t.PeriodRules = make([]PeriodRule, 0, len(f.PeriodRules))
		for i, r := range f.PeriodRules {
			p, ok := enums.ParsePeriod(r.Period)
			if !ok || len(r.Keywords) == 0 {
				return nil, fmt.Errorf("market table: period rule %d: bad period %q or no keywords", i, r.Period)
			}
			t.PeriodRules = append(t.PeriodRules, PeriodRule{Period: p, Keywords: r.Keywords})
		}
	}

	return t, nil
}

func (b betFile) toMeta() (BetMeta, error) {
	alias := strings.ToLower(strings.TrimSpace(b.Alias))
	if alias == "" {
		return BetMeta{}, fmt.Errorf("alias is required")
	}
	meta := BetMeta{Alias: enums.MarketAlias(alias)}
	for _, ps := range b.Periods {
		p, ok := enums.ParsePeriod(ps)
		if !ok {
			return BetMeta{}, fmt.Errorf("unknown period %q", ps)
		}
		meta.Periods = append(meta.Periods, p)
	}
	return meta, nil
}
