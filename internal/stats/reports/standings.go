// Package reports holds the public report assemblers: one entry point per
// dashboard report, each a pure composition of the stats primitives. The
// assemblers never call each other, never touch storage, and allocate fresh
// output on every call, so any number of them can run concurrently over the
// same fact slice.
package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamStanding is one team's line in the standings table.
type TeamStanding struct {
	Team          string       `json:"team"`
	Overall       stats.Record `json:"overall"`
	Home          stats.Record `json:"home"`
	Away          stats.Record `json:"away"`
	PointsFor     int          `json:"pointsFor"`
	PointsAgainst int          `json:"pointsAgainst"`
	PointsPerGame string       `json:"pointsPerGame"`
}

// StandingsReport ranks every team by overall winning percentage.
type StandingsReport struct {
	Teams []TeamStanding `json:"teams"`
}

// BuildStandings folds the fact set into one standings line per team, ranked
// by win rate descending with insertion order breaking ties.
func BuildStandings(facts []domain.GameFact) StandingsReport {
	overall := stats.TallyTeams(facts)

	home := stats.NewTallySet()
	away := stats.NewTallySet()
	for _, g := range facts {
		home.Get(g.HomeTeam.Name).Add(g.HomeScore, g.AwayScore)
		away.Get(g.AwayTeam.Name).Add(g.AwayScore, g.HomeScore)
	}

	standings := make([]TeamStanding, 0, overall.Len())
	for _, tally := range overall.Ordered() {
		entry := TeamStanding{
			Team:          tally.Key,
			Overall:       tally.Record(),
			Home:          stats.TallyRecord(0, 0, 0),
			Away:          stats.TallyRecord(0, 0, 0),
			PointsFor:     tally.PointsFor,
			PointsAgainst: tally.PointsAgainst,
			PointsPerGame: stats.Avg(tally.PointsFor, tally.Games()),
		}
		if h, ok := home.Lookup(tally.Key); ok {
			entry.Home = h.Record()
		}
		if a, ok := away.Lookup(tally.Key); ok {
			entry.Away = a.Record()
		}
		standings = append(standings, entry)
	}

	ranked := stats.RankTopN(standings, func(s TeamStanding) float64 {
		t, _ := overall.Lookup(s.Team)
		return t.WinRate()
	}, -1, true)

	return StandingsReport{Teams: ranked}
}
