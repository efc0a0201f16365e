package resolve

import (
	"strings"
	"unicode/utf8"
)

// DefaultFirstCharBonus is added when both names start with the same character.
const DefaultFirstCharBonus = 0.05

// Similarity scores two normalized names: token-set Jaccard plus the default
// first-character bonus. The result lies in [0, 1.05].
func Similarity(a, b string) float64 {
	return similarity(a, b, DefaultFirstCharBonus)
}

func similarity(a, b string, bonus float64) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)

	inter := 0
	for t := range ta {
		if _, ok := tb[t]; ok {
			inter++
		}
	}
	union := len(ta) + len(tb) - inter
	if union < 1 {
		union = 1
	}
	score := float64(inter) / float64(union)
	if a != "" && b != "" && firstRune(a) == firstRune(b) {
		score += bonus
	}
	return score
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
