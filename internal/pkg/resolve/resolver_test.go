package resolve

import (
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

func fixture(id int, home, away string) map[string]any {
	return map[string]any{
		"id":    float64(id),
		"date":  "2024-02-03T00:00:00+00:00",
		"teams": map[string]any{"home": map[string]any{"name": home}, "away": map[string]any{"name": away}},
	}
}

func TestResolve_ExactMatch(t *testing.T) {
	r := NewResolver(DefaultConfig())
	got := r.Resolve([]map[string]any{fixture(10, "Duke", "UNC")}, "Duke", "UNC")
	if got.FixtureID == nil || *got.FixtureID != 10 {
		t.Fatalf("FixtureID = %v, want 10", got.FixtureID)
	}
	if got.PickedReason != ReasonHighConfidence {
		t.Errorf("PickedReason = %q, want %q", got.PickedReason, ReasonHighConfidence)
	}
	if len(got.Candidates) != 1 || got.Candidates[0].Home != "Duke" {
		t.Errorf("Candidates = %+v", got.Candidates)
	}
}

func TestResolve_Ambiguity(t *testing.T) {
	r := NewResolver(DefaultConfig())
	items := []map[string]any{
		fixture(1, "Kansas", "Kansas State"),
		fixture(2, "Kansas State", "Kansas"),
	}
	got := r.Resolve(items, "Kansas", "")
	if len(got.Candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(got.Candidates))
	}
	if got.Candidates[0].Score < got.Candidates[1].Score {
		t.Errorf("candidates not sorted: %+v", got.Candidates)
	}
	// both names fold to "kansas"; the tie keeps input order
	if got.Candidates[0].FixtureID != 1 {
		t.Errorf("top candidate = %d, want 1", got.Candidates[0].FixtureID)
	}
	if got.Candidates[0].Score >= 0.6 {
		if got.FixtureID == nil || got.PickedReason != ReasonSingleTeam {
			t.Errorf("top score %.2f meets threshold but result = %+v", got.Candidates[0].Score, got)
		}
	} else if got.FixtureID != nil {
		t.Errorf("FixtureID = %d, want nil below threshold", *got.FixtureID)
	}
}

func TestResolve_Decisions(t *testing.T) {
	items := []map[string]any{
		fixture(1, "Duke", "North Carolina"),
		fixture(2, "Kentucky", "Tennessee"),
		fixture(3, "Gonzaga", "Saint Mary's"),
	}

	tests := []struct {
		name       string
		home, away string
		wantID     int
		wantReason string
	}{
		{"both hints exact", "Duke", "North Carolina", 1, ReasonHighConfidence},
		{"both hints misspelled", "Dook", "Carolina", 0, ReasonLowConfidence},
		{"home only", "Kentucky", "", 2, ReasonSingleTeam},
		{"away only", "", "Saint Mary's", 3, ReasonSingleTeam},
		{"one weak hint", "Kansas", "", 0, ReasonNotEnoughInfo},
		{"no hints", "", "", 0, ReasonNotEnoughInfo},
		{"filler-only hint", "The", "", 0, ReasonNotEnoughInfo},
	}

	r := NewResolver(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(items, tt.home, tt.away)
			if tt.wantID == 0 {
				if got.FixtureID != nil {
					t.Errorf("FixtureID = %d, want nil", *got.FixtureID)
				}
			} else if got.FixtureID == nil || *got.FixtureID != tt.wantID {
				t.Errorf("FixtureID = %v, want %d", got.FixtureID, tt.wantID)
			}
			if got.PickedReason != tt.wantReason {
				t.Errorf("PickedReason = %q, want %q", got.PickedReason, tt.wantReason)
			}
			if len(got.Candidates) != 3 {
				t.Errorf("got %d candidates, want 3", len(got.Candidates))
			}
		})
	}
}

func TestResolve_NoData(t *testing.T) {
	r := NewResolver(DefaultConfig())

	got := r.Resolve(nil, "Duke", "UNC")
	if got.FixtureID != nil || got.PickedReason != ReasonNoFixtures || len(got.Candidates) != 0 {
		t.Errorf("Resolve(nil) = %+v", got)
	}

	got = r.Resolve([]map[string]any{{"teams": map[string]any{}}}, "Duke", "UNC")
	if got.FixtureID != nil || got.PickedReason != ReasonNoParsable {
		t.Errorf("Resolve(unparsable) = %+v", got)
	}
}

func TestResolve_TopN(t *testing.T) {
	fixtures := make([]payload.Fixture, 0, 8)
	for i := 1; i <= 8; i++ {
		fixtures = append(fixtures, payload.Fixture{ID: i, Home: "Team", Away: "Other"})
	}
	got := NewResolver(Config{MaxCandidates: 3}).ResolveFixtures(fixtures, "Team", "Other")
	if len(got.Candidates) != 3 {
		t.Fatalf("got %d candidates, want 3", len(got.Candidates))
	}
	for i, c := range got.Candidates {
		if c.FixtureID != i+1 {
			t.Errorf("candidate %d = %d, want stable order", i, c.FixtureID)
		}
	}
	if got.FixtureID == nil || *got.FixtureID != 1 {
		t.Errorf("FixtureID = %v, want 1", got.FixtureID)
	}
}

func TestNewResolver_Defaults(t *testing.T) {
	cfg := NewResolver(Config{TwoHintThreshold: -1, OneHintThreshold: -1}).Config()
	if cfg.TwoHintThreshold != 1.2 || cfg.OneHintThreshold != 0.6 || cfg.MaxCandidates != 5 || len(cfg.FillerTokens) != 7 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestNewResolver_ZeroThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TwoHintThreshold = 0
	r := NewResolver(cfg)
	if got := r.Config().TwoHintThreshold; got != 0 {
		t.Fatalf("TwoHintThreshold = %v, want 0 kept", got)
	}

	fixtures := []payload.Fixture{{ID: 4, Home: "Gonzaga", Away: "Saint Marys"}}
	got := r.ResolveFixtures(fixtures, "Purdue", "Wisconsin")
	if got.FixtureID == nil || *got.FixtureID != 4 || got.PickedReason != ReasonHighConfidence {
		t.Errorf("zero threshold should accept any candidate, got %+v", got)
	}
	got = NewResolver(DefaultConfig()).ResolveFixtures(fixtures, "Purdue", "Wisconsin")
	if got.FixtureID != nil {
		t.Errorf("default threshold accepted an unrelated fixture: %+v", got)
	}
}
