package odds

import (
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

func eq(a *float64, b float64) bool { return a != nil && *a == b }

func TestMapTotal(t *testing.T) {
	rows := []payload.Outcome{
		{Label: "Over 46.5", Price: "-110"},
		{Label: "Under 46.5", Price: "-105"},
	}
	got := MapTotal(rows)
	if got == nil || !eq(got.Line, 46.5) || !eq(got.OverPrice, -110) || !eq(got.UnderPrice, -105) {
		t.Fatalf("MapTotal() = %+v, want {46.5 -110 -105}", got)
	}
}

func TestMapTotal_PicksPricesOnFirstLine(t *testing.T) {
	rows := []payload.Outcome{
		{Label: "Over 2.5", Price: "1.95"},
		{Label: "Over 3.5", Price: "2.80"},
		{Label: "Under 3.5", Price: "1.40"},
		{Label: "Under 2.5", Price: "1.85"},
	}
	got := MapTotal(rows)
	if got == nil || !eq(got.Line, 2.5) || !eq(got.OverPrice, 1.95) || !eq(got.UnderPrice, 1.85) {
		t.Errorf("MapTotal() = %+v, want {2.5 1.95 1.85}", got)
	}
}

func TestMapTotal_ExplicitLine(t *testing.T) {
	rows := []payload.Outcome{
		{Label: "Over", Price: -105, Line: "47.5"},
		{Label: "Under", Price: -115, Line: "47.5"},
	}
	got := MapTotal(rows)
	if got == nil || !eq(got.Line, 47.5) || !eq(got.OverPrice, -105) || !eq(got.UnderPrice, -115) {
		t.Errorf("MapTotal() = %+v", got)
	}
	if MapTotal([]payload.Outcome{{Label: "Home", Price: "1.9"}}) != nil {
		t.Error("MapTotal without over/under rows should be nil")
	}
}

func TestMapMoneyline(t *testing.T) {
	tests := []struct {
		name                string
		rows                []payload.Outcome
		home, away, draw    float64
		wantDraw, wantEmpty bool
	}{
		{
			name:     "three way labels",
			rows:     []payload.Outcome{{Label: "Home", Price: "1.85"}, {Label: "Draw", Price: "3.60"}, {Label: "Away", Price: "4.20"}},
			home:     1.85, away: 4.20, draw: 3.60, wantDraw: true,
		},
		{
			name:     "side codes",
			rows:     []payload.Outcome{{Label: "1", Price: "2.0"}, {Label: "X", Price: "3.1"}, {Label: "2", Price: "3.5"}},
			home:     2.0, away: 3.5, draw: 3.1, wantDraw: true,
		},
		{
			name: "first row per side wins",
			rows: []payload.Outcome{{Label: "Home", Price: "+120"}, {Label: "Away", Price: "-140"}, {Label: "Home", Price: "+150"}},
			home: 120, away: -140,
		},
		{
			name: "positional fallback",
			rows: []payload.Outcome{{Label: "Duke Blue Devils", Price: "1.5"}, {Label: "North Carolina", Price: "2.6"}},
			home: 1.5, away: 2.6,
		},
		{
			name:      "nothing parsable",
			rows:      []payload.Outcome{{Label: "Home", Price: "N/A"}},
			wantEmpty: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapMoneyline(tt.rows)
			if tt.wantEmpty {
				if got != nil {
					t.Errorf("MapMoneyline() = %+v, want nil", got)
				}
				return
			}
			if got == nil || !eq(got.Home, tt.home) || !eq(got.Away, tt.away) {
				t.Fatalf("MapMoneyline() = %+v, want home %v away %v", got, tt.home, tt.away)
			}
			if tt.wantDraw != (got.Draw != nil) || (tt.wantDraw && *got.Draw != tt.draw) {
				t.Errorf("draw = %v, want %v", got.Draw, tt.draw)
			}
		})
	}
}

func TestMapSpread(t *testing.T) {
	tests := []struct {
		name            string
		rows            []payload.Outcome
		line, home, away float64
	}{
		{
			name: "label lines",
			rows: []payload.Outcome{{Label: "Home -1", Price: "1.96"}, {Label: "Away +1", Price: "1.86"}},
			line: -1, home: 1.96, away: 1.86,
		},
		{
			name: "explicit field beats label",
			rows: []payload.Outcome{{Label: "Home -3", Price: -110, Line: "-3.5"}, {Label: "Away", Price: -110, Line: "+3.5"}},
			line: -3.5, home: -110, away: -110,
		},
		{
			name: "away line when home has none",
			rows: []payload.Outcome{{Label: "Home", Price: "1.9"}, {Label: "Away", Price: "1.9", Line: "+4.5"}},
			line: 4.5, home: 1.9, away: 1.9,
		},
		{
			name: "numeric side codes",
			rows: []payload.Outcome{{Label: "1 -1.5", Price: "2.1"}, {Label: "2 +1.5", Price: "1.7"}},
			line: -1.5, home: 2.1, away: 1.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSpread(tt.rows)
			if got == nil || !eq(got.Line, tt.line) || !eq(got.HomePrice, tt.home) || !eq(got.AwayPrice, tt.away) {
				t.Errorf("MapSpread() = %+v, want {%v %v %v}", got, tt.line, tt.home, tt.away)
			}
		})
	}

	if got := MapSpread([]payload.Outcome{{Label: "Over 2.5", Price: "1.9"}}); got != nil {
		t.Errorf("MapSpread without sides = %+v, want nil", got)
	}
}
