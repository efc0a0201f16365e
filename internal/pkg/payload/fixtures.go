package payload

import (
	"strings"

	"github.com/Vodeneev/oddsline/internal/pkg/models"
)

// Paging is the provider paging block.
type Paging struct {
	Current int
	Total   int
}

// HasMore reports whether another page follows.
func (p Paging) HasMore() bool {
	return p.Total > 0 && p.Current < p.Total
}

// Fixtures is a decoded fixtures/games list. Items stay untyped; ExtractFixture
// reads them.
type Fixtures struct {
	Items  []map[string]any
	Paging Paging
}

// DecodeFixtures parses a fixtures/games body. Items come from "response", or
// from "results" when that key holds a list.
func DecodeFixtures(data []byte) (*Fixtures, error) {
	root, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FixturesFromTree(root), nil
}

// FixturesFromTree reads a fixtures list from an already decoded tree.
func FixturesFromTree(root map[string]any) *Fixtures {
	items := mapList(root["response"])
	if len(items) == 0 {
		items = mapList(root["results"])
	}
	f := &Fixtures{Items: items}
	if n, ok := asInt(get(root, "paging", "current")); ok {
		f.Paging.Current = n
	}
	if n, ok := asInt(get(root, "paging", "total")); ok {
		f.Paging.Total = n
	}
	return f
}

// Fixture is the typed view of one fixture/game node.
type Fixture struct {
	ID     int
	Date   string
	Home   string
	Away   string
	Status string
	Score  models.FinalScore
}

// ExtractFixture reads one fixture node. ok is false when no id can be found.
// Soccer nodes are recognised by their "fixture" object.
func ExtractFixture(node map[string]any) (Fixture, bool) {
	if asMap(node["fixture"]) != nil && node["id"] == nil {
		return soccerFixture(node)
	}
	return v1Fixture(node)
}

func soccerFixture(node map[string]any) (Fixture, bool) {
	id, ok := asInt(get(node, "fixture", "id"))
	if !ok {
		return Fixture{}, false
	}
	return Fixture{
		ID:     id,
		Date:   dateString(get(node, "fixture", "date")),
		Home:   teamName(get(node, "teams", "home")),
		Away:   teamName(get(node, "teams", "away")),
		Status: asString(get(node, "fixture", "status", "short")),
		Score: models.FinalScore{
			Home: intPtr(get(node, "goals", "home")),
			Away: intPtr(get(node, "goals", "away")),
		},
	}, true
}

func v1Fixture(node map[string]any) (Fixture, bool) {
	var id int
	var ok bool
	for _, path := range [][]string{{"id"}, {"game", "id"}, {"fixture", "id"}} {
		if id, ok = asInt(get(node, path...)); ok {
			break
		}
	}
	if !ok {
		return Fixture{}, false
	}

	f := Fixture{ID: id}
	f.Date = dateString(first(node, "date"))
	if f.Date == "" {
		f.Date = dateString(get(node, "game", "date"))
	}
	f.Home = teamName(get(node, "teams", "home"))
	if f.Home == "" {
		f.Home = teamName(node["home"])
	}
	f.Away = teamName(get(node, "teams", "away"))
	if f.Away == "" {
		f.Away = teamName(node["away"])
	}
	f.Status = asString(get(node, "status", "short"))
	if f.Status == "" {
		f.Status = asString(get(node, "game", "status", "short"))
	}
	f.Score = models.FinalScore{
		Home: sideScore(get(node, "scores", "home")),
		Away: sideScore(get(node, "scores", "away")),
	}
	return f, true
}

func teamName(v any) string {
	return strings.TrimSpace(asString(get(v, "name")))
}

// dateString accepts an ISO string or the american-football {date, time} object.
func dateString(v any) string {
	if s := asString(v); s != "" {
		return s
	}
	m := asMap(v)
	if m == nil {
		return ""
	}
	d := asString(m["date"])
	if t := asString(m["time"]); d != "" && t != "" {
		return d + "T" + t
	}
	return d
}

// sideScore reads scores.<side>.total, or the side itself when it is a number.
func sideScore(v any) *int {
	if m := asMap(v); m != nil {
		return intPtr(m["total"])
	}
	return intPtr(v)
}
