package models

// Moneyline is the winner market. Draw is only set by three-way (soccer) books.
type Moneyline struct {
	Home *float64 `json:"home"`
	Away *float64 `json:"away"`
	Draw *float64 `json:"draw"`
}

// Spread is a handicap market. Line is quoted from the home side when both sides carry one.
type Spread struct {
	Line      *float64 `json:"line"`
	HomePrice *float64 `json:"home_price"`
	AwayPrice *float64 `json:"away_price"`
}

// Total is an over/under market; also used for the half and quarter slots.
type Total struct {
	Line       *float64 `json:"line"`
	OverPrice  *float64 `json:"over_price"`
	UnderPrice *float64 `json:"under_price"`
}

// PropEntry is one outcome row of a non-core market, or of a core market on a
// period that has no dedicated slot.
type PropEntry struct {
	Label  string   `json:"label"`
	Line   *float64 `json:"line"`
	Price  *float64 `json:"price"`
	Period string   `json:"period"`
}

// NormalizedOdds is the provider-agnostic odds shape. Nil slots mean the market
// was absent for the selected bookmaker.
//
// Prices are passed through in the convention the provider quotes: API-Football
// (soccer) quotes decimal odds, the v1 families usually quote decimal as well but
// individual bookmakers may publish American odds. PriceFormat is left to callers.
type NormalizedOdds struct {
	Bookmaker    *BookmakerRef          `json:"bookmaker,omitempty"`
	Moneyline    *Moneyline             `json:"moneyline"`
	Spread       *Spread                `json:"spread"`
	Total        *Total                 `json:"total"`
	HalfTotal    *Total                 `json:"half_total"`
	QuarterTotal *Total                 `json:"quarter_total"`
	Props        map[string][]PropEntry `json:"props"`
}

// BookmakerRef identifies the bookmaker whose markets were normalized.
type BookmakerRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewNormalizedOdds returns the empty result: all slots nil, props an empty map.
func NewNormalizedOdds() *NormalizedOdds {
	return &NormalizedOdds{Props: make(map[string][]PropEntry)}
}

// IsEmpty reports whether no market was mapped.
func (o *NormalizedOdds) IsEmpty() bool {
	return o == nil || (o.Moneyline == nil && o.Spread == nil && o.Total == nil &&
		o.HalfTotal == nil && o.QuarterTotal == nil && len(o.Props) == 0)
}
