package odds

import (
	"testing"

	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

func intp(n int) *int { return &n }

func TestSelectBookmaker(t *testing.T) {
	withMarket := []payload.Market{{Name: "Moneyline"}}

	tests := []struct {
		name      string
		books     []payload.Bookmaker
		preferred *int
		wantID    int
		wantNil   bool
	}{
		{name: "empty list", books: nil, wantNil: true},
		{
			name:   "first with markets",
			books:  []payload.Bookmaker{{ID: 1}, {ID: 2, Markets: withMarket}},
			wantID: 2,
		},
		{
			name:      "preferred listed second",
			books:     []payload.Bookmaker{{ID: 1, Markets: withMarket}, {ID: 2, Markets: withMarket}},
			preferred: intp(2),
			wantID:    2,
		},
		{
			name:      "preferred without markets still wins",
			books:     []payload.Bookmaker{{ID: 1, Markets: withMarket}, {ID: 2}},
			preferred: intp(2),
			wantID:    2,
		},
		{
			name:      "preferred missing falls back",
			books:     []payload.Bookmaker{{ID: 1}, {ID: 3, Markets: withMarket}},
			preferred: intp(9),
			wantID:    3,
		},
		{
			name:   "none with markets",
			books:  []payload.Bookmaker{{ID: 4}, {ID: 5}},
			wantID: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectBookmaker(tt.books, tt.preferred)
			if tt.wantNil {
				if got != nil {
					t.Errorf("SelectBookmaker() = %d, want nil", got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("SelectBookmaker() = %v, want id %d", got, tt.wantID)
			}
		})
	}
}
