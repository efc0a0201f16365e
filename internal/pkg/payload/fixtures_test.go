package payload

import "testing"

func TestExtractFixture(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantID    int
		wantOK    bool
		wantDate  string
		wantHome  string
		wantAway  string
		wantScore [2]int
	}{
		{
			name:     "soccer",
			body:     `{"response":[{"fixture":{"id":11,"date":"2024-03-02T15:00:00+00:00","status":{"short":"FT"}},"teams":{"home":{"name":"Arsenal"},"away":{"name":"Chelsea"}},"goals":{"home":2,"away":1}}]}`,
			wantID:   11, wantOK: true, wantDate: "2024-03-02T15:00:00+00:00",
			wantHome: "Arsenal", wantAway: "Chelsea", wantScore: [2]int{2, 1},
		},
		{
			name:     "basketball",
			body:     `{"response":[{"id":22,"date":"2024-01-10T00:30:00+00:00","teams":{"home":{"name":"Duke"},"away":{"name":"UNC"}},"scores":{"home":{"total":80},"away":{"total":77}}}]}`,
			wantID:   22, wantOK: true, wantDate: "2024-01-10T00:30:00+00:00",
			wantHome: "Duke", wantAway: "UNC", wantScore: [2]int{80, 77},
		},
		{
			name:     "american football game object",
			body:     `{"response":[{"game":{"id":33,"date":{"date":"2024-01-07","time":"18:00"}},"teams":{"home":{"name":"Bills"},"away":{"name":"Dolphins"}},"scores":{"home":21,"away":14}}]}`,
			wantID:   33, wantOK: true, wantDate: "2024-01-07T18:00",
			wantHome: "Bills", wantAway: "Dolphins", wantScore: [2]int{21, 14},
		},
		{
			name:     "flat home/away",
			body:     `{"results":[{"id":"44","home":{"name":"Kansas"},"away":{"name":"Baylor"}}]}`,
			wantID:   44, wantOK: true, wantHome: "Kansas", wantAway: "Baylor", wantScore: [2]int{-1, -1},
		},
		{
			name:   "no id",
			body:   `{"response":[{"teams":{"home":{"name":"A"},"away":{"name":"B"}}}]}`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx, err := DecodeFixtures([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeFixtures: %v", err)
			}
			if len(fx.Items) != 1 {
				t.Fatalf("got %d items, want 1", len(fx.Items))
			}
			got, ok := ExtractFixture(fx.Items[0])
			if ok != tt.wantOK {
				t.Fatalf("ExtractFixture ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.ID != tt.wantID || got.Date != tt.wantDate || got.Home != tt.wantHome || got.Away != tt.wantAway {
				t.Errorf("ExtractFixture = %+v", got)
			}
			if tt.wantScore[0] < 0 {
				if got.Score.Home != nil || got.Score.Away != nil {
					t.Errorf("score should be unknown, got %+v", got.Score)
				}
				return
			}
			if got.Score.Home == nil || got.Score.Away == nil ||
				*got.Score.Home != tt.wantScore[0] || *got.Score.Away != tt.wantScore[1] {
				t.Errorf("score = %+v, want %v", got.Score, tt.wantScore)
			}
		})
	}
}

func TestDecodeFixtures_Paging(t *testing.T) {
	fx, err := DecodeFixtures([]byte(`{"results": 2, "paging": {"current": 1, "total": 3}, "response": [{"id": 1}, {"id": 2}]}`))
	if err != nil {
		t.Fatalf("DecodeFixtures: %v", err)
	}
	if len(fx.Items) != 2 {
		t.Errorf("got %d items, want 2", len(fx.Items))
	}
	if !fx.Paging.HasMore() {
		t.Errorf("paging %+v should have more pages", fx.Paging)
	}
	if (Paging{Current: 3, Total: 3}).HasMore() {
		t.Error("last page should not have more")
	}
}
