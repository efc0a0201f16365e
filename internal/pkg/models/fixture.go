package models

// FixtureCandidate is one scored fixture considered by the resolver.
type FixtureCandidate struct {
	FixtureID int     `json:"fixture_id"`
	Date      string  `json:"date"`
	Home      string  `json:"home"`
	Away      string  `json:"away"`
	Score     float64 `json:"score"`
}

// ResolutionResult is the resolver output. A nil FixtureID means the caller
// has to pick one of the candidates; it is not an error.
type ResolutionResult struct {
	FixtureID    *int               `json:"fixture_id"`
	Candidates   []FixtureCandidate `json:"candidates"`
	PickedReason string             `json:"picked_reason"`
}

// Resolved reports whether a fixture id was picked.
func (r ResolutionResult) Resolved() bool {
	return r.FixtureID != nil
}

// FinalScore is the result of a finished fixture. Either side may be unknown.
type FinalScore struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// FixtureSummary is one history row.
type FixtureSummary struct {
	FixtureID int             `json:"fixture_id"`
	Date      string          `json:"date"`
	Home      string          `json:"home"`
	Away      string          `json:"away"`
	Status    string          `json:"status,omitempty"`
	Score     FinalScore      `json:"score"`
	Odds      *NormalizedOdds `json:"odds"`
}
