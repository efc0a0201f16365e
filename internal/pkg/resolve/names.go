// Package resolve matches a (home, away) team-name query against a day's fixtures.
package resolve

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultFillerTokens are dropped from team names before comparison.
var DefaultFillerTokens = []string{"university", "college", "the", "fc", "sc", "club", "state"}

// NameNormalizer folds team names into comparable token strings.
type NameNormalizer struct {
	filler map[string]struct{}
}

// NewNameNormalizer builds a normalizer dropping the given tokens (case-insensitive).
func NewNameNormalizer(filler []string) *NameNormalizer {
	n := &NameNormalizer{filler: make(map[string]struct{}, len(filler))}
	for _, f := range filler {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			n.filler[f] = struct{}{}
		}
	}
	return n
}

var defaultNormalizer = NewNameNormalizer(DefaultFillerTokens)

// NormalizeName normalizes with the default filler list.
func NormalizeName(s string) string {
	return defaultNormalizer.Normalize(s)
}

// Normalize strips accents, lowercases, turns every non-alphanumeric run into a
// single space and drops filler tokens. Normalize(Normalize(x)) == Normalize(x).
func (n *NameNormalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, f := range fields {
		if _, drop := n.filler[f]; !drop {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// SplitTeams splits "Home vs Away" style input. Supported separators: " vs ",
// " v ", " @ " (away @ home) and " - ".
func SplitTeams(s string) (home, away string, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", "", false
	}
	lower := strings.ToLower(s)
	for _, sep := range []string{" vs. ", " vs ", " v ", " @ ", " - "} {
		i := strings.Index(lower, sep)
		if i < 0 {
			continue
		}
		left := strings.TrimSpace(s[:i])
		right := strings.TrimSpace(s[i+len(sep):])
		if left == "" || right == "" {
			return "", "", false
		}
		if sep == " @ " {
			return right, left, true
		}
		return left, right, true
	}
	return s, "", true
}
