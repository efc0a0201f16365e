package resolve

import (
	"log/slog"
	"sort"

	"github.com/Vodeneev/oddsline/internal/pkg/models"
	"github.com/Vodeneev/oddsline/internal/pkg/payload"
)

// Reasons reported in ResolutionResult.PickedReason.
const (
	ReasonHighConfidence = "High-confidence team match."
	ReasonSingleTeam     = "Single-team match."
	ReasonLowConfidence  = "Low confidence; confirm selection."
	ReasonNotEnoughInfo  = "Not enough info; confirm selection."
	ReasonNoFixtures     = "No fixtures found for date."
	ReasonNoParsable     = "No parsable fixtures."
)

// Config holds the acceptance thresholds.
type Config struct {
	TwoHintThreshold float64  `yaml:"two_hint_threshold"`
	OneHintThreshold float64  `yaml:"one_hint_threshold"`
	FirstCharBonus   float64  `yaml:"first_char_bonus"`
	MaxCandidates    int      `yaml:"max_candidates"`
	FillerTokens     []string `yaml:"filler_tokens"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		TwoHintThreshold: 1.2,
		OneHintThreshold: 0.6,
		FirstCharBonus:   DefaultFirstCharBonus,
		MaxCandidates:    5,
		FillerTokens:     append([]string(nil), DefaultFillerTokens...),
	}
}

// Resolver is stateless after construction and safe for concurrent use.
type Resolver struct {
	cfg   Config
	names *NameNormalizer
}

// NewResolver creates a resolver. Thresholds are taken as given, so zero is a
// valid setting; start from DefaultConfig to keep the stock values. Negative
// thresholds, a non-positive MaxCandidates and nil FillerTokens take defaults.
func NewResolver(cfg Config) *Resolver {
	def := DefaultConfig()
	if cfg.TwoHintThreshold < 0 {
		cfg.TwoHintThreshold = def.TwoHintThreshold
	}
	if cfg.OneHintThreshold < 0 {
		cfg.OneHintThreshold = def.OneHintThreshold
	}
	if cfg.FirstCharBonus < 0 {
		cfg.FirstCharBonus = 0
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = def.MaxCandidates
	}
	if cfg.FillerTokens == nil {
		cfg.FillerTokens = def.FillerTokens
	}
	return &Resolver{cfg: cfg, names: NewNameNormalizer(cfg.FillerTokens)}
}

// Config returns the effective configuration.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve extracts fixtures from raw provider nodes and ranks them against the
// hints. Empty hints are treated as not supplied.
func (r *Resolver) Resolve(items []map[string]any, home, away string) models.ResolutionResult {
	if len(items) == 0 {
		return models.ResolutionResult{Candidates: []models.FixtureCandidate{}, PickedReason: ReasonNoFixtures}
	}
	fixtures := make([]payload.Fixture, 0, len(items))
	for _, it := range items {
		f, ok := payload.ExtractFixture(it)
		if !ok {
			slog.Debug("Dropping fixture without id")
			continue
		}
		fixtures = append(fixtures, f)
	}
	if len(fixtures) == 0 {
		return models.ResolutionResult{Candidates: []models.FixtureCandidate{}, PickedReason: ReasonNoParsable}
	}
	return r.ResolveFixtures(fixtures, home, away)
}

// ResolveFixtures ranks already extracted fixtures.
func (r *Resolver) ResolveFixtures(fixtures []payload.Fixture, home, away string) models.ResolutionResult {
	if len(fixtures) == 0 {
		return models.ResolutionResult{Candidates: []models.FixtureCandidate{}, PickedReason: ReasonNoFixtures}
	}

	wantHome := r.names.Normalize(home)
	wantAway := r.names.Normalize(away)

	scored := make([]models.FixtureCandidate, 0, len(fixtures))
	for _, f := range fixtures {
		score := 0.0
		if wantHome != "" {
			score += similarity(wantHome, r.names.Normalize(f.Home), r.cfg.FirstCharBonus)
		}
		if wantAway != "" {
			score += similarity(wantAway, r.names.Normalize(f.Away), r.cfg.FirstCharBonus)
		}
		scored = append(scored, models.FixtureCandidate{
			FixtureID: f.ID,
			Date:      f.Date,
			Home:      f.Home,
			Away:      f.Away,
			Score:     score,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > r.cfg.MaxCandidates {
		scored = scored[:r.cfg.MaxCandidates]
	}

	res := models.ResolutionResult{Candidates: scored}
	best := scored[0]
	switch {
	case wantHome != "" && wantAway != "":
		if best.Score >= r.cfg.TwoHintThreshold {
			res.FixtureID = &best.FixtureID
			res.PickedReason = ReasonHighConfidence
		} else {
			res.PickedReason = ReasonLowConfidence
		}
	case wantHome != "" || wantAway != "":
		if best.Score >= r.cfg.OneHintThreshold {
			res.FixtureID = &best.FixtureID
			res.PickedReason = ReasonSingleTeam
		} else {
			res.PickedReason = ReasonNotEnoughInfo
		}
	default:
		res.PickedReason = ReasonNotEnoughInfo
	}
	return res
}
