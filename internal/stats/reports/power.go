package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// PowerRankingEntry is one team's line in a weekly ranking. The rating is the
// cumulative win share through that week, a tie counting as half a win.
type PowerRankingEntry struct {
	Rank   int          `json:"rank"`
	Team   string       `json:"team"`
	Rating string       `json:"rating"` // three decimals
	Record stats.Record `json:"record"`
}

// WeekRankings is the full ranking after one week.
type WeekRankings struct {
	Week    string              `json:"week"`
	Entries []PowerRankingEntry `json:"entries"`
}

// PowerRankingsReport carries the week-by-week rankings for one season.
type PowerRankingsReport struct {
	Season int            `json:"season"`
	Weeks  []WeekRankings `json:"weeks"`
}

// BuildPowerRankings replays the season in week order, re-ranking every team
// on cumulative results after each week. Equal ratings keep first-appearance
// order.
func BuildPowerRankings(facts []domain.GameFact, season int) PowerRankingsReport {
	ordered := stats.SortBySeasonWeek(stats.SeasonFacts(facts, season))

	cumulative := stats.NewTallySet()
	weeks := make([]WeekRankings, 0)

	for i := 0; i < len(ordered); {
		week := ordered[i].Week
		for ; i < len(ordered) && ordered[i].Week == week; i++ {
			g := ordered[i]
			cumulative.Get(g.HomeTeam.Name).Add(g.HomeScore, g.AwayScore)
			cumulative.Get(g.AwayTeam.Name).Add(g.AwayScore, g.HomeScore)
		}

		tallies := cumulative.Ordered()
		ratings := make(map[string]float64, len(tallies))
		entries := make([]PowerRankingEntry, 0, len(tallies))
		for _, tally := range tallies {
			rating := 0.0
			if tally.Games() > 0 {
				rating = (float64(tally.Wins) + 0.5*float64(tally.Ties)) / float64(tally.Games())
			}
			ratings[tally.Key] = rating
			entries = append(entries, PowerRankingEntry{
				Team:   tally.Key,
				Rating: stats.PctValue(rating),
				Record: tally.Record(),
			})
		}
		ranked := stats.RankTopN(entries, func(e PowerRankingEntry) float64 {
			return ratings[e.Team]
		}, -1, true)
		for rank := range ranked {
			ranked[rank].Rank = rank + 1
		}

		weeks = append(weeks, WeekRankings{Week: week, Entries: ranked})
	}

	return PowerRankingsReport{Season: season, Weeks: weeks}
}
