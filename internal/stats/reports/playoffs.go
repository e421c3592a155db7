package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// RoundRecord is one team's record in a single playoff round.
type RoundRecord struct {
	Round  string       `json:"round"`
	Record stats.Record `json:"record"`
}

// PlayoffTeamStats is one team's full playoff history.
type PlayoffTeamStats struct {
	Team        string        `json:"team"`
	Overall     stats.Record  `json:"overall"`
	Rounds      []RoundRecord `json:"rounds"` // round play order, rounds the team appeared in
	Appearances int           `json:"appearances"` // distinct postseason berths
	Titles      int           `json:"titles"`
}

// PlayoffSeason summarizes one postseason.
type PlayoffSeason struct {
	Season   int    `json:"season"`
	Games    int    `json:"games"`
	Champion string `json:"champion"`
}

// PlayoffStatsReport aggregates the playoff-round facts only.
type PlayoffStatsReport struct {
	Teams   []PlayoffTeamStats `json:"teams"`
	Seasons []PlayoffSeason    `json:"seasons"`
}

// BuildPlayoffStats filters to playoff facts, builds team playoff records
// split by round, and compiles per-season postseason summaries. Teams rank by
// overall playoff win rate.
func BuildPlayoffStats(facts []domain.GameFact) PlayoffStatsReport {
	playoff := stats.PlayoffFacts(facts)
	overall := stats.TallyTeams(playoff)

	byRound := make(map[string]*stats.TallySet, 4)
	for _, round := range stats.PlayoffRounds() {
		byRound[round] = stats.NewTallySet()
	}
	for _, g := range playoff {
		set, ok := byRound[g.Week]
		if !ok {
			continue
		}
		set.Get(g.HomeTeam.Name).Add(g.HomeScore, g.AwayScore)
		set.Get(g.AwayTeam.Name).Add(g.AwayScore, g.HomeScore)
	}

	appearances := make(map[string]map[int]bool)
	titles := make(map[string]int)
	for _, g := range playoff {
		for _, team := range []string{g.HomeTeam.Name, g.AwayTeam.Name} {
			if appearances[team] == nil {
				appearances[team] = make(map[int]bool)
			}
			appearances[team][g.Season] = true
		}
		if g.Championship && g.Winner() != "" {
			titles[g.Winner()]++
		}
	}

	teams := make([]PlayoffTeamStats, 0, overall.Len())
	for _, tally := range overall.Ordered() {
		entry := PlayoffTeamStats{
			Team:        tally.Key,
			Overall:     tally.Record(),
			Rounds:      make([]RoundRecord, 0, len(stats.PlayoffRounds())),
			Appearances: len(appearances[tally.Key]),
			Titles:      titles[tally.Key],
		}
		for _, round := range stats.PlayoffRounds() {
			if t, ok := byRound[round].Lookup(tally.Key); ok {
				entry.Rounds = append(entry.Rounds, RoundRecord{Round: round, Record: t.Record()})
			}
		}
		teams = append(teams, entry)
	}
	ranked := stats.RankTopN(teams, func(p PlayoffTeamStats) float64 {
		t, _ := overall.Lookup(p.Team)
		return t.WinRate()
	}, -1, true)

	seasons := make([]PlayoffSeason, 0)
	for _, season := range stats.Seasons(playoff) {
		seasonFacts := stats.SeasonFacts(playoff, season)
		summary := PlayoffSeason{Season: season, Games: len(seasonFacts)}
		for _, g := range seasonFacts {
			if g.Championship {
				summary.Champion = g.Winner()
			}
		}
		seasons = append(seasons, summary)
	}

	return PlayoffStatsReport{Teams: ranked, Seasons: seasons}
}
