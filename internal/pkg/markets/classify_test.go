package markets

import (
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/enums"
)

func id(n int) *int { return &n }

func TestClassify(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name       string
		league     enums.League
		betID      *int
		marketName string
		wantAlias  enums.MarketAlias
		wantPeriod enums.Period
	}{
		{"id moneyline", enums.NFL, id(1), "Home/Away", enums.Moneyline, enums.PeriodGame},
		{"id spread picks half from name", enums.NFL, id(2), "Asian Handicap First Half", enums.Spread, enums.Period1H},
		{"id quarter total", enums.NBA, id(61), "Over/Under 1st Quarter", enums.Total, enums.Period1Q},
		{"id period outside list falls back to first", enums.NBA, id(61), "Over/Under", enums.Total, enums.Period1Q},
		{"id beats name", enums.NFL, id(3), "Moneyline", enums.Total, enums.PeriodGame},
		{"soccer ids", enums.Soccer, id(5), "Goals Over/Under", enums.Total, enums.PeriodGame},
		{"soccer second half winner", enums.Soccer, id(3), "Second Half Winner", enums.Moneyline, enums.Period2H},
		{"unknown id uses name", enums.NFL, id(999), "Point Spread", enums.Spread, enums.PeriodGame},
		{"no id uses name", enums.Soccer, nil, "Match Winner", enums.Moneyline, enums.PeriodGame},
		{"name period", enums.NBA, nil, "Total - 2nd Half", enums.Total, enums.Period2H},
		{"case insensitive", enums.NBA, nil, "TOTALS", enums.Total, enums.PeriodGame},
		{"prop before core", enums.NBA, nil, "Player Points Over/Under", "player_points", enums.PeriodGame},
		{"team total is a prop", enums.NFL, nil, "Home Team Total", "team_total", enums.PeriodGame},
		{"unknown market", enums.Soccer, nil, "Both Teams Score", "", enums.PeriodGame},
		{"empty name", enums.Soccer, nil, "", "", enums.PeriodGame},
		{"league without id table", enums.League("mlb"), id(1), "Run Line", enums.Spread, enums.PeriodGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Classify(tt.league, tt.betID, tt.marketName)
			if got.Alias != tt.wantAlias || got.Period != tt.wantPeriod {
				t.Errorf("Classify(%s, %q) = (%q, %q), want (%q, %q)",
					tt.league, tt.marketName, got.Alias, got.Period, tt.wantAlias, tt.wantPeriod)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	table := DefaultTable()
	first := table.Classify(enums.NBA, id(2), "Asian Handicap 2nd Half")
	for i := 0; i < 5; i++ {
		if got := table.Classify(enums.NBA, id(2), "Asian Handicap 2nd Half"); got != first {
			t.Fatalf("Classify call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestResolveBetID(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		league enums.League
		alias  enums.MarketAlias
		period enums.Period
		want   int
		wantOK bool
	}{
		{enums.NFL, enums.Moneyline, enums.PeriodGame, 1, true},
		{enums.NFL, enums.Spread, enums.Period1Q, 47, true},
		{enums.NFL, enums.Spread, enums.Period1H, 2, true},
		{enums.NFL, enums.Total, enums.Period4Q, 64, true},
		{enums.NFL, enums.Total, "", 3, true},
		{enums.NCAAB, enums.Total, enums.Period1Q, 3, true}, // alias-only fallback
		{enums.Soccer, enums.Spread, enums.PeriodGame, 4, true},
		{enums.NBA, "player_points", enums.PeriodGame, 0, false},
		{enums.NBA, "", enums.PeriodGame, 0, false},
	}
	for _, tt := range tests {
		got, ok := table.ResolveBetID(tt.league, tt.alias, tt.period)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveBetID(%s, %q, %q) = (%d, %v), want (%d, %v)",
				tt.league, tt.alias, tt.period, got, ok, tt.want, tt.wantOK)
		}
	}
}
