package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// SeasonScoring summarizes league scoring for one season.
type SeasonScoring struct {
	Season      int    `json:"season"`
	Games       int    `json:"games"`
	AvgTotal    string `json:"avgTotal"`
	AvgMargin   string `json:"avgMargin"`
	HomeWinRate string `json:"homeWinRate"` // percent, two decimals
	OverRate    string `json:"overRate"`    // percent of settled totals, two decimals
}

// ScoringTrendsReport tracks how scoring moved across seasons.
type ScoringTrendsReport struct {
	Seasons []SeasonScoring `json:"seasons"`
}

// BuildScoringTrends aggregates per-season scoring. The over rate counts only
// facts with a settled total.
func BuildScoringTrends(facts []domain.GameFact) ScoringTrendsReport {
	seasons := make([]SeasonScoring, 0)

	for _, season := range stats.Seasons(facts) {
		seasonFacts := stats.SeasonFacts(facts, season)

		points, marginSum, homeWins, decided := 0, 0, 0, 0
		overs, settled := 0, 0
		for _, g := range seasonFacts {
			points += g.HomeScore + g.AwayScore
			margin := g.HomeScore - g.AwayScore
			if margin < 0 {
				margin = -margin
			}
			marginSum += margin
			if !g.IsTie() {
				decided++
				if g.HomeScore > g.AwayScore {
					homeWins++
				}
			}
			if res, ok := stats.SettledTotal(g); ok {
				settled++
				if res == domain.TotalOver {
					overs++
				}
			}
		}

		seasons = append(seasons, SeasonScoring{
			Season:      season,
			Games:       len(seasonFacts),
			AvgTotal:    stats.Avg(points, len(seasonFacts)),
			AvgMargin:   stats.Avg(marginSum, len(seasonFacts)),
			HomeWinRate: stats.Rate(homeWins, decided),
			OverRate:    stats.Rate(overs, settled),
		})
	}

	return ScoringTrendsReport{Seasons: seasons}
}
