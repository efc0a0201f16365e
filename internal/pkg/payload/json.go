package payload

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// api decodes numbers as json.Number so large ids and odds strings keep their text.
var api = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Decode parses a provider body into a generic JSON tree.
func Decode(data []byte) (map[string]any, error) {
	var root map[string]any
	if err := api.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode provider payload: %w", err)
	}
	if root == nil {
		root = map[string]any{}
	}
	return root, nil
}

// Marshal encodes v with the same configuration used for decoding.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func mapList(v any) []map[string]any {
	l := asList(v)
	out := make([]map[string]any, 0, len(l))
	for _, x := range l {
		if m := asMap(x); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// get walks nested objects; a missing or non-object step yields nil.
func get(v any, keys ...string) any {
	for _, k := range keys {
		m := asMap(v)
		if m == nil {
			return nil
		}
		v = m[k]
	}
	return v
}

// first returns the first present, non-null key of m.
func first(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// asInt accepts integral numbers and numeric strings.
func asInt(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		if f, err := x.Float64(); err == nil && f == float64(int(f)) {
			return int(f), true
		}
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	case int:
		return x, true
	case int64:
		return int(x), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func intPtr(v any) *int {
	if n, ok := asInt(v); ok {
		return &n
	}
	return nil
}
