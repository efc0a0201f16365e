package markets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

const sampleTable = `
bets:
  nba:
    "1": {alias: moneyline, periods: [game]}
    7: {alias: spread, periods: [1h, 2h]}
name_rules:
  - alias: spread
    keywords: [handicap]
  - alias: moneyline
    keywords: [winner]
`

func TestParseTable(t *testing.T) {
	table, err := ParseTable([]byte(sampleTable))
	if err != nil {
		t.Fatalf("ParseTable: %v", err)
	}

	if meta, ok := table.Lookup(enums.NBA, 7); !ok || meta.Alias != enums.Spread || len(meta.Periods) != 2 {
		t.Errorf("Lookup(nba, 7) = %+v, %v", meta, ok)
	}
	if _, ok := table.Lookup(enums.NFL, 1); ok {
		t.Errorf("bets section should replace the default id map")
	}
	if len(table.NameRules) != 2 || table.NameRules[0].Alias != enums.Spread {
		t.Errorf("name rules = %+v", table.NameRules)
	}
	// period rules were not given, defaults stay
	if got := table.Classify(enums.NBA, nil, "Handicap 1st Quarter"); got.Period != enums.Period1Q {
		t.Errorf("period with default rules = %q, want 1q", got.Period)
	}
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown league", "bets:\n  mlb:\n    1: {alias: moneyline}\n"},
		{"bad id", "bets:\n  nba:\n    x: {alias: moneyline}\n"},
		{"missing alias", "bets:\n  nba:\n    1: {periods: [game]}\n"},
		{"bad period", "bets:\n  nba:\n    1: {alias: total, periods: [3h]}\n"},
		{"rule without keywords", "name_rules:\n  - alias: total\n"},
		{"not yaml", "bets: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTable([]byte(tt.doc)); err == nil {
				t.Errorf("ParseTable(%q) expected error", tt.doc)
			}
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markets.yaml")
	if err := os.WriteFile(path, []byte(sampleTable), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(path); err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if _, err := LoadTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTable on missing file should fail")
	}
}

func TestLoadTable_ShippedConfig(t *testing.T) {
	table, err := LoadTable(filepath.Join("..", "..", "..", "configs", "markets.yaml"))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if id, ok := table.ResolveBetID(enums.Soccer, enums.Total, enums.Period1H); !ok || id != 6 {
		t.Errorf("ResolveBetID(soccer, total, 1h) = %d, %v, want 6", id, ok)
	}
}
