package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

const notableGameLimit = 10

// MarginBucketStats is the share of games landing in one margin range.
type MarginBucketStats struct {
	Bucket string `json:"bucket"`
	Games  int    `json:"games"`
	Share  string `json:"share"` // percent, two decimals
}

// NotableGame is one extreme result.
type NotableGame struct {
	Season    int    `json:"season"`
	Week      string `json:"week"`
	Date      string `json:"date"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Margin    int    `json:"margin"`
	Total     int    `json:"total"`
}

// MarginProfilesReport distributes results across margin ranges and lists the
// extremes. Only played games qualify.
type MarginProfilesReport struct {
	Buckets         []MarginBucketStats `json:"buckets"`
	BiggestBlowouts []NotableGame       `json:"biggestBlowouts"`
	HighestScoring  []NotableGame       `json:"highestScoring"`
}

// BuildMarginProfiles buckets every played fact by margin of victory and
// ranks the biggest blowouts and highest-scoring games.
func BuildMarginProfiles(facts []domain.GameFact) MarginProfilesReport {
	played := stats.Filter(facts, domain.GameFact.Played)

	counts := make(map[string]int, len(stats.MarginBuckets))
	games := make([]NotableGame, 0, len(played))
	for _, g := range played {
		margin := g.HomeScore - g.AwayScore
		if margin < 0 {
			margin = -margin
		}
		if label, ok := stats.MarginBuckets.Assign(float64(margin)); ok {
			counts[label]++
		}
		games = append(games, NotableGame{
			Season:    g.Season,
			Week:      g.Week,
			Date:      g.Date,
			HomeTeam:  g.HomeTeam.Name,
			AwayTeam:  g.AwayTeam.Name,
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
			Margin:    margin,
			Total:     g.HomeScore + g.AwayScore,
		})
	}

	buckets := make([]MarginBucketStats, 0, len(stats.MarginBuckets))
	for _, label := range stats.MarginBuckets.Labels() {
		buckets = append(buckets, MarginBucketStats{
			Bucket: label,
			Games:  counts[label],
			Share:  stats.Rate(counts[label], len(played)),
		})
	}

	return MarginProfilesReport{
		Buckets: buckets,
		BiggestBlowouts: stats.RankTopN(games, func(g NotableGame) float64 {
			return float64(g.Margin)
		}, notableGameLimit, true),
		HighestScoring: stats.RankTopN(games, func(g NotableGame) float64 {
			return float64(g.Total)
		}, notableGameLimit, true),
	}
}
