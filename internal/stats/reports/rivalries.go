package reports

import (
	"fmt"

	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

const rivalryLimit = 20

// Rivalry is one frequently-played pairing.
type Rivalry struct {
	TeamA  string `json:"teamA"`
	TeamB  string `json:"teamB"`
	Games  int    `json:"games"`
	AWins  int    `json:"aWins"`
	BWins  int    `json:"bWins"`
	Ties   int    `json:"ties"`
	Series string `json:"series"` // "W-L-T" from TeamA's perspective
}

// RivalriesReport lists the most-played pairings.
type RivalriesReport struct {
	Rivalries []Rivalry `json:"rivalries"`
}

// BuildRivalries ranks every pairing by number of meetings, most first.
func BuildRivalries(facts []domain.GameFact) RivalriesReport {
	pairs := stats.TallyPairs(facts).Ordered()

	top := stats.RankTopN(pairs, func(p *stats.PairTally) float64 {
		return float64(p.Games())
	}, rivalryLimit, true)

	rivalries := make([]Rivalry, 0, len(top))
	for _, p := range top {
		rivalries = append(rivalries, Rivalry{
			TeamA:  p.TeamA,
			TeamB:  p.TeamB,
			Games:  p.Games(),
			AWins:  p.AWins,
			BWins:  p.BWins,
			Ties:   p.Ties,
			Series: fmt.Sprintf("%d-%d-%d", p.AWins, p.BWins, p.Ties),
		})
	}

	return RivalriesReport{Rivalries: rivalries}
}
