package models

import "testing"

func f(v float64) *float64 { return &v }

func TestSnapshotRows(t *testing.T) {
	odds := NewNormalizedOdds()
	odds.Bookmaker = &BookmakerRef{ID: 8, Name: "Bet365"}
	odds.Moneyline = &Moneyline{Home: f(1.9), Away: f(2.1)}
	odds.Total = &Total{Line: f(46.5), OverPrice: f(1.91), UnderPrice: nil}
	odds.Props["spread_1h"] = []PropEntry{
		{Label: "Home", Line: f(-1.5), Price: f(1.8), Period: "1h"},
		{Label: "Home", Line: f(-2.5), Price: f(2.0), Period: "1h"},
		{Label: "Away", Line: f(1.5), Price: nil, Period: "1h"},
	}

	rows := SnapshotRows(SnapshotRow{RunID: "r1", FixtureID: 10}, odds)

	want := []string{"moneyline:home", "moneyline:away", "total:over", "spread_1h:1h Home"}
	if len(rows) != len(want) {
		t.Fatalf("SnapshotRows returned %d rows, want %d: %+v", len(rows), len(want), rows)
	}
	for i, key := range want {
		if rows[i].Key() != key {
			t.Errorf("row %d key = %q, want %q", i, rows[i].Key(), key)
		}
		if rows[i].Bookmaker != "Bet365" || rows[i].RunID != "r1" || rows[i].FixtureID != 10 {
			t.Errorf("row %d lost base fields: %+v", i, rows[i])
		}
	}
	if rows[3].Price != 1.8 {
		t.Errorf("repeated prop label should keep the first entry, got price %v", rows[3].Price)
	}
}

func TestSnapshotRows_Empty(t *testing.T) {
	if rows := SnapshotRows(SnapshotRow{}, nil); rows != nil {
		t.Errorf("SnapshotRows(nil) = %v, want nil", rows)
	}
	if rows := SnapshotRows(SnapshotRow{}, NewNormalizedOdds()); len(rows) != 0 {
		t.Errorf("SnapshotRows(empty) = %v, want no rows", rows)
	}
}
