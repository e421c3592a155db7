package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamOverUnder is one team's over/under ledger.
type TeamOverUnder struct {
	Team    string `json:"team"`
	Overs   int    `json:"overs"`
	Unders  int    `json:"unders"`
	Pushes  int    `json:"pushes"`
	OverPct string `json:"overPct"`
}

// TotalBucketStats summarizes settled totals inside one line range.
type TotalBucketStats struct {
	Bucket         string `json:"bucket"`
	Games          int    `json:"games"`
	Overs          int    `json:"overs"`
	Unders         int    `json:"unders"`
	Pushes         int    `json:"pushes"`
	OverPct        string `json:"overPct"`
	AvgActualTotal string `json:"avgActualTotal"`
}

// OverUnderTrendsReport covers only facts with a settled total.
type OverUnderTrendsReport struct {
	LeagueOvers  int                `json:"leagueOvers"`
	LeagueUnders int                `json:"leagueUnders"`
	LeaguePushes int                `json:"leaguePushes"`
	OverPct      string             `json:"overPct"`
	Teams        []TeamOverUnder    `json:"teams"`
	Buckets      []TotalBucketStats `json:"buckets"`
}

// BuildOverUnderTrends tallies over/under settlements league-wide, per team
// (ranked by over rate), and per totals-line bucket.
func BuildOverUnderTrends(facts []domain.GameFact) OverUnderTrendsReport {
	var league stats.TotalTally
	type bucketAcc struct {
		tally  stats.TotalTally
		points int
	}
	buckets := make(map[string]*bucketAcc, len(stats.TotalBuckets))
	for _, label := range stats.TotalBuckets.Labels() {
		buckets[label] = &bucketAcc{}
	}

	for _, g := range facts {
		res, ok := stats.SettledTotal(g)
		if !ok {
			continue
		}
		league.Add(res)
		if line, ok := stats.TotalLine(g); ok {
			if label, ok := stats.TotalBuckets.Assign(line); ok {
				buckets[label].tally.Add(res)
				buckets[label].points += g.HomeScore + g.AwayScore
			}
		}
	}

	perTeam := stats.TallyTotals(facts)
	teams := make([]TeamOverUnder, 0, len(perTeam.Ordered()))
	overRates := make(map[string]float64)
	for _, tally := range perTeam.Ordered() {
		teams = append(teams, TeamOverUnder{
			Team:    tally.Key,
			Overs:   tally.Overs,
			Unders:  tally.Unders,
			Pushes:  tally.Pushes,
			OverPct: tally.OverPct(),
		})
		if tally.Games() > 0 {
			overRates[tally.Key] = float64(tally.Overs) / float64(tally.Games())
		}
	}
	ranked := stats.RankTopN(teams, func(t TeamOverUnder) float64 {
		return overRates[t.Team]
	}, -1, true)

	bucketStats := make([]TotalBucketStats, 0, len(stats.TotalBuckets))
	for _, label := range stats.TotalBuckets.Labels() {
		a := buckets[label]
		bucketStats = append(bucketStats, TotalBucketStats{
			Bucket:         label,
			Games:          a.tally.Games(),
			Overs:          a.tally.Overs,
			Unders:         a.tally.Unders,
			Pushes:         a.tally.Pushes,
			OverPct:        a.tally.OverPct(),
			AvgActualTotal: stats.Avg(a.points, a.tally.Games()),
		})
	}

	return OverUnderTrendsReport{
		LeagueOvers:  league.Overs,
		LeagueUnders: league.Unders,
		LeaguePushes: league.Pushes,
		OverPct:      league.OverPct(),
		Teams:        ranked,
		Buckets:      bucketStats,
	}
}
