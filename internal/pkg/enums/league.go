package enums

import "strings"

// League represents a supported league alias
type League string

const (
	NBA    League = "nba"
	NFL    League = "nfl"
	NCAAF  League = "ncaaf"
	NCAAB  League = "ncaab"
	Soccer League = "soccer"
)

// Family is the provider schema family a league is served from.
type Family string

const (
	FamilySoccer           Family = "soccer_v3"
	FamilyAmericanFootball Family = "american_football_v1"
	FamilyBasketball       Family = "basketball_v1"
)

// LeagueInfo contains additional information about a league
type LeagueInfo struct {
	Name     string
	Family   Family
	LeagueID int // provider league id used when no override is given
}

// GetLeagueInfo returns league information
func (l League) GetLeagueInfo() LeagueInfo {
	switch l {
	case NBA:
		return LeagueInfo{Name: "NBA", Family: FamilyBasketball, LeagueID: 12}
	case NCAAB:
		return LeagueInfo{Name: "NCAA Basketball", Family: FamilyBasketball, LeagueID: 7}
	case NFL:
		return LeagueInfo{Name: "NFL", Family: FamilyAmericanFootball, LeagueID: 1}
	case NCAAF:
		return LeagueInfo{Name: "NCAA Football", Family: FamilyAmericanFootball, LeagueID: 2}
	case Soccer:
		return LeagueInfo{Name: "Soccer", Family: FamilySoccer, LeagueID: 39}
	default:
		return LeagueInfo{Name: "Unknown"}
	}
}

// Family returns the provider schema family for the league.
func (l League) Family() Family {
	return l.GetLeagueInfo().Family
}

// IsValid checks if league is supported
func (l League) IsValid() bool {
	switch l {
	case NBA, NFL, NCAAF, NCAAB, Soccer:
		return true
	default:
		return false
	}
}

// String returns string representation
func (l League) String() string {
	return string(l)
}

// GetAllLeagues returns all supported leagues
func GetAllLeagues() []League {
	return []League{NBA, NFL, NCAAF, NCAAB, Soccer}
}

// LeagueNames returns the sorted list of accepted league aliases.
func LeagueNames() []string {
	return []string{"nba", "ncaab", "ncaaf", "nfl", "soccer"}
}

// ParseLeague parses string to League enum
func ParseLeague(s string) (League, bool) {
	league := League(strings.ToLower(strings.TrimSpace(s)))
	return league, league.IsValid()
}
