package payload

import "strings"

// Shape tags which key set a bookmaker node uses for its markets and outcomes.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeBets          // bets/values
	ShapeMarkets       // markets/outcomes
)

func (s Shape) String() string {
	switch s {
	case ShapeBets:
		return "bets"
	case ShapeMarkets:
		return "markets"
	default:
		return "unknown"
	}
}

// shapeKeys lists the field names probed for each shape, preferred first.
type shapeKeys struct {
	rows  []string
	name  []string
	label []string
	price []string
	line  []string
}

var keysByShape = map[Shape]shapeKeys{
	ShapeBets: {
		rows:  []string{"values", "outcomes"},
		name:  []string{"name", "key"},
		label: []string{"value", "name", "label"},
		price: []string{"odd", "price"},
		line:  []string{"handicap", "point", "total", "line"},
	},
	ShapeMarkets: {
		rows:  []string{"outcomes", "values"},
		name:  []string{"name", "key", "label"},
		label: []string{"name", "label", "value", "description"},
		price: []string{"price", "odd", "odds"},
		line:  []string{"point", "total", "line", "handicap"},
	},
}

// Outcome is one row of a market. Price and Line keep the raw provider value;
// coercion happens in the line package.
type Outcome struct {
	Label string
	Price any
	Line  any
}

// Market is one bet/market node.
type Market struct {
	ID       *int
	Name     string
	Outcomes []Outcome
}

// Bookmaker is one bookmaker node with its markets in declaration order.
type Bookmaker struct {
	ID      int
	Name    string
	Shape   Shape
	Markets []Market
}

// Odds is the first response element of an odds payload.
type Odds struct {
	FixtureID  *int
	Bookmakers []Bookmaker
}

// DecodeOdds parses an odds body. Only invalid JSON is an error; structural
// surprises degrade to empty nodes.
func DecodeOdds(data []byte) (*Odds, error) {
	root, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return OddsFromTree(root), nil
}

// OddsFromTree reads the first element of root.response. A missing or empty
// response yields an Odds with no bookmakers.
func OddsFromTree(root map[string]any) *Odds {
	out := &Odds{}
	resp := mapList(root["response"])
	if len(resp) == 0 {
		return out
	}
	node := resp[0]
	out.FixtureID = intPtr(first(node, "id"))
	if out.FixtureID == nil {
		out.FixtureID = intPtr(get(node, "fixture", "id"))
	}
	if out.FixtureID == nil {
		out.FixtureID = intPtr(get(node, "game", "id"))
	}
	for _, bm := range mapList(node["bookmakers"]) {
		out.Bookmakers = append(out.Bookmakers, bookmakerFromNode(bm))
	}
	return out
}

// shapeOf resolves the tagged union once per bookmaker node.
func shapeOf(bm map[string]any) Shape {
	if _, ok := bm["bets"].([]any); ok {
		return ShapeBets
	}
	if _, ok := bm["markets"].([]any); ok {
		return ShapeMarkets
	}
	return ShapeUnknown
}

func bookmakerFromNode(bm map[string]any) Bookmaker {
	b := Bookmaker{Name: strings.TrimSpace(asString(first(bm, "name", "title", "key")))}
	if id, ok := asInt(bm["id"]); ok {
		b.ID = id
	}
	b.Shape = shapeOf(bm)

	var nodes []map[string]any
	switch b.Shape {
	case ShapeBets:
		nodes = mapList(bm["bets"])
	case ShapeMarkets:
		nodes = mapList(bm["markets"])
	default:
		return b
	}

	keys := keysByShape[b.Shape]
	for _, mn := range nodes {
		b.Markets = append(b.Markets, marketFromNode(mn, keys))
	}
	return b
}

func marketFromNode(mn map[string]any, keys shapeKeys) Market {
	m := Market{
		ID:   intPtr(mn["id"]),
		Name: strings.TrimSpace(asString(first(mn, keys.name...))),
	}
	for _, row := range mapList(first(mn, keys.rows...)) {
		m.Outcomes = append(m.Outcomes, Outcome{
			Label: strings.TrimSpace(asString(first(row, keys.label...))),
			Price: first(row, keys.price...),
			Line:  first(row, keys.line...),
		})
	}
	return m
}
