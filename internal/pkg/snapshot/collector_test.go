package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vodeneev/oddsline/internal/pkg/apisports"
	"github.com/Vodeneev/oddsline/internal/pkg/enums"
	"github.com/Vodeneev/oddsline/internal/pkg/odds"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

const soccerOdds = `{"response": [{"fixture": {"id": 7}, "bookmakers": [
  {"id": 8, "name": "Bet365", "bets": [
    {"id": 1, "name": "Match Winner", "values": [{"value": "Home", "odd": "2.10"}, {"value": "Draw", "odd": "3.40"}, {"value": "Away", "odd": "3.60"}]}
  ]}
]}]}`

type fakeProvider struct {
	items   []map[string]any
	listErr error
	oddsErr map[int]error
}

func (f *fakeProvider) FixturesByDate(ctx context.Context, league enums.League, date string, opts apisports.ListOptions) (*payload.Fixtures, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &payload.Fixtures{Items: f.items}, nil
}

func (f *fakeProvider) OddsForFixture(ctx context.Context, league enums.League, fixtureID int, opts apisports.OddsOptions) ([]byte, error) {
	if err := f.oddsErr[fixtureID]; err != nil {
		return nil, err
	}
	return []byte(soccerOdds), nil
}

func soccerFixture(id int, home, away string) map[string]any {
	return map[string]any{
		"fixture": map[string]any{"id": float64(id), "date": "2024-08-17T14:00:00+00:00"},
		"teams":   map[string]any{"home": map[string]any{"name": home}, "away": map[string]any{"name": away}},
	}
}

func TestCollect(t *testing.T) {
	p := &fakeProvider{
		items:   []map[string]any{soccerFixture(7, "Arsenal", "Wolves"), soccerFixture(8, "Everton", "Brighton")},
		oddsErr: map[int]error{8: errors.New("timeout")},
	}
	c := NewCollector(p, odds.NewNormalizer(nil), 2, 0)
	fixed := time.Date(2024, 8, 17, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	rows, err := c.Collect(context.Background(), enums.Soccer, "2024-08-17", "run-1")
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (home/draw/away of fixture 7)", len(rows))
	}
	for _, r := range rows {
		if r.FixtureID != 7 || r.RunID != "run-1" || r.Bookmaker != "Bet365" || r.Slot != "moneyline" {
			t.Errorf("unexpected row %+v", r)
		}
		if !r.RecordedAt.Equal(fixed) {
			t.Errorf("RecordedAt = %v, want %v", r.RecordedAt, fixed)
		}
		if r.StartTime.Hour() != 14 {
			t.Errorf("StartTime = %v", r.StartTime)
		}
	}
}

func TestCollect_ListError(t *testing.T) {
	c := NewCollector(&fakeProvider{listErr: errors.New("down")}, odds.NewNormalizer(nil), 1, 0)
	if _, err := c.Collect(context.Background(), enums.NBA, "2024-02-03", "r"); err == nil {
		t.Error("expected error when the fixture list fails")
	}
}

func TestParseStart(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-03T19:30:00+00:00", time.Date(2024, 2, 3, 19, 30, 0, 0, time.UTC)},
		{"2024-02-03T19:30", time.Date(2024, 2, 3, 19, 30, 0, 0, time.UTC)},
		{"2024-02-03", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Time{}},
	}
	for _, tt := range tests {
		if got := parseStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("parseStart(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
