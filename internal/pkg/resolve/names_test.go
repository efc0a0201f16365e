package resolve

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Duke", "duke"},
		{"Kansas State", "kansas"},
		{"The Ohio State University", "ohio"},
		{"Manchester City FC", "manchester city"},
		{"  St. John's  ", "st john s"},
		{"Atlético Madrid", "atletico madrid"},
		{"Bayern München", "bayern munchen"},
		{"Texas A&M", "texas a m"},
		{"Boston College", "boston"},
		{"", ""},
		{"The", ""},
	}

	for _, tt := range tests {
		result := NormalizeName(tt.input)
		if result != tt.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, result, tt.expected)
		}
		if again := NormalizeName(result); again != result {
			t.Errorf("NormalizeName not idempotent for %q: %q -> %q", tt.input, result, again)
		}
	}
}

func TestNameNormalizer_CustomFiller(t *testing.T) {
	n := NewNameNormalizer([]string{"United", " "})
	if got := n.Normalize("Manchester United FC"); got != "manchester fc" {
		t.Errorf("Normalize = %q, want %q", got, "manchester fc")
	}
}

func TestSplitTeams(t *testing.T) {
	tests := []struct {
		input      string
		home, away string
		ok         bool
	}{
		{"Duke vs UNC", "Duke", "UNC", true},
		{"Duke vs. UNC", "Duke", "UNC", true},
		{"Arsenal v Chelsea", "Arsenal", "Chelsea", true},
		{"Bills @ Chiefs", "Chiefs", "Bills", true},
		{"Kansas", "Kansas", "", true},
		{"", "", "", false},
	}
	for _, tt := range tests {
		home, away, ok := SplitTeams(tt.input)
		if home != tt.home || away != tt.away || ok != tt.ok {
			t.Errorf("SplitTeams(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.input, home, away, ok, tt.home, tt.away, tt.ok)
		}
	}
}
