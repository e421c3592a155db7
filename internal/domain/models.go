package domain

// Playoff round tokens used in the Week field. Regular-season weeks are the
// numeric strings "1".."18".
const (
	WeekWildCard  = "WildCard"
	WeekDivision  = "Division"
	WeekConfChamp = "ConfChamp"
	WeekSuperBowl = "SuperBowl"
)

// SpreadResult is the settlement of the point-spread bet, stated from the
// home team's perspective.
type SpreadResult string

const (
	SpreadCovered SpreadResult = "COVERED"
	SpreadLost    SpreadResult = "LOST"
	SpreadPush    SpreadResult = "PUSH"
)

// TotalResult is the settlement of the over/under bet. It is team-agnostic.
type TotalResult string

const (
	TotalOver  TotalResult = "OVER"
	TotalUnder TotalResult = "UNDER"
	TotalPush  TotalResult = "PUSH"
)

// Participant identifies one side of a game.
type Participant struct {
	Name       string `json:"name"`
	Abbr       string `json:"abbr"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Market holds the closing betting line for a game. The struct as a whole is
// optional, and each field is individually optional; a nil field means the
// source had no data, never zero.
type Market struct {
	Spread       *float64      `json:"spread"`    // home perspective; negative = home favored
	OverUnder    *float64      `json:"overUnder"` // total-points line
	SpreadResult *SpreadResult `json:"spreadResult"`
	TotalResult  *TotalResult  `json:"totalResult"`
}

// Weather holds game-environment data when the source recorded it.
type Weather struct {
	Temperature *int   `json:"temperature"` // Fahrenheit
	Wind        string `json:"wind"`
	Condition   string `json:"condition"` // e.g. "Dome", "Outdoor"
}

// GameFact is one immutable historical game record, the canonical shape every
// aggregation function consumes. The engine treats it as read-only and never
// deduplicates; season+week+home+away is the natural key at the source.
type GameFact struct {
	Season       int         `json:"season"`
	Week         string      `json:"week"`
	Date         string      `json:"date"` // YYYY-MM-DD
	Day          string      `json:"day"`  // e.g. "Sun"
	Playoff      bool        `json:"playoff"`
	Championship bool        `json:"championship"`
	HomeTeam     Participant `json:"homeTeam"`
	AwayTeam     Participant `json:"awayTeam"`
	HomeScore    int         `json:"homeScore"`
	AwayScore    int         `json:"awayScore"`
	Market       *Market     `json:"market,omitempty"`
	Weather      *Weather    `json:"weather,omitempty"`
	Primetime    string      `json:"primetime,omitempty"` // slot label, "" when not primetime
}

// IsTie reports whether the game ended with equal scores.
func (g GameFact) IsTie() bool {
	return g.HomeScore == g.AwayScore
}

// Winner returns the winning team's name, or "" for a tie.
func (g GameFact) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam.Name
	case g.AwayScore > g.HomeScore:
		return g.AwayTeam.Name
	default:
		return ""
	}
}

// Loser returns the losing team's name, or "" for a tie.
func (g GameFact) Loser() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.AwayTeam.Name
	case g.AwayScore > g.HomeScore:
		return g.HomeTeam.Name
	default:
		return ""
	}
}

// Played reports whether the game appears to have been played. The source may
// include future fixtures with placeholder 0-0 scorelines, so an actual 0-0
// final is indistinguishable from an unplayed game. Known limitation inherited
// from the source data; strength-of-schedule relies on this heuristic.
func (g GameFact) Played() bool {
	return g.HomeScore != 0 || g.AwayScore != 0
}

// Involves reports whether the named team played in this game.
func (g GameFact) Involves(team string) bool {
	return g.HomeTeam.Name == team || g.AwayTeam.Name == team
}

// Opponent returns the other participant from the named team's perspective.
// The second return is false when the team did not play in this game.
func (g GameFact) Opponent(team string) (Participant, bool) {
	switch team {
	case g.HomeTeam.Name:
		return g.AwayTeam, true
	case g.AwayTeam.Name:
		return g.HomeTeam, true
	default:
		return Participant{}, false
	}
}

// TeamScore returns points for and against from the named team's perspective.
// ok is false when the team did not play in this game.
func (g GameFact) TeamScore(team string) (pointsFor, pointsAgainst int, ok bool) {
	switch team {
	case g.HomeTeam.Name:
		return g.HomeScore, g.AwayScore, true
	case g.AwayTeam.Name:
		return g.AwayScore, g.HomeScore, true
	default:
		return 0, 0, false
	}
}

// TeamMeta describes one team for reports that need grouping metadata beyond
// what a GameFact carries. FranchiseKey unites successive historical names of
// the same franchise (relocations, rebrands) into one lineage.
type TeamMeta struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FranchiseKey string `json:"franchiseKey"`
	Active       bool   `json:"active"`
}
