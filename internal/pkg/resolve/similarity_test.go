package resolve

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"duke", "duke", 1.05},
		{"duke", "unc", 0},
		{"north carolina", "north carolina central", 2.0/3.0 + 0.05},
		{"kansas", "baylor", 0},
		{"kansas", "kentucky", 0.05},
		{"", "duke", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got < 0 || got > 1.05+1e-9 {
			t.Errorf("Similarity(%q, %q) = %v out of range", tt.a, tt.b, got)
		}
	}
}
