package line

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// noise is stripped from string prices before coercion ("+105", "$1.90", "55%").
var noise = strings.NewReplacer(
	"+", "",
	"$", "",
	"€", "",
	"£", "",
	"%", "",
	" ", "",
)

// thousands matches comma digit grouping: "1,250", "12,500.5".
var thousands = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)

// labelNumber finds a signed number standing as its own word in an outcome label,
// e.g. "Over 2.5", "Home -3.5" or "Home (-3.5)". A bare "1"/"2" label is a side code, not a line.
var labelNumber = regexp.MustCompile(`\s\(?([-+]?\d+(?:\.\d+)?)(?:\s|\)|$)`)

// ParsePrice coerces a provider odd into a float. Accepts strings, JSON numbers
// and Go numerics. Returns nil for anything that is not a finite number.
func ParsePrice(v any) *float64 {
	var f float64
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		return parseString(x.String())
	case string:
		return parseString(x)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ParseLine coerces an explicit handicap/point/total/line field.
func ParseLine(v any) *float64 {
	return ParsePrice(v)
}

// LineFromLabel extracts a line embedded in an outcome label ("Over 46.5" -> 46.5).
func LineFromLabel(label string) *float64 {
	m := labelNumber.FindStringSubmatch(label)
	if len(m) < 2 {
		return nil
	}
	return parseString(m[1])
}

// OutcomeLine returns the explicit line when present, else the label line.
func OutcomeLine(explicit any, label string) *float64 {
	if l := ParseLine(explicit); l != nil {
		return l
	}
	return LineFromLabel(label)
}

func parseString(s string) *float64 {
	s = noise.Replace(strings.TrimSpace(s))
	if s == "" {
		return nil
	}
	s, ok := decimalComma(s)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// decimalComma resolves commas: thousands grouping is dropped, a lone comma
// without a dot is the decimal separator ("1,90"), anything else is rejected.
func decimalComma(s string) (string, bool) {
	switch n := strings.Count(s, ","); {
	case n == 0:
		return s, true
	case thousands.MatchString(s):
		return strings.ReplaceAll(s, ",", ""), true
	case n == 1 && !strings.Contains(s, "."):
		return strings.Replace(s, ",", ".", 1), true
	}
	return "", false
}
