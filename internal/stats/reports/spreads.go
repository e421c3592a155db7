package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TeamATS is one team's against-the-spread ledger split by venue.
type TeamATS struct {
	Team    string             `json:"team"`
	Overall stats.MarketRecord `json:"overall"`
	Home    stats.MarketRecord `json:"home"`
	Away    stats.MarketRecord `json:"away"`
}

// SpreadAccuracyReport covers only facts with a settled spread; games with a
// null spread never shift any denominator here.
type SpreadAccuracyReport struct {
	LeagueHome stats.MarketRecord `json:"leagueHome"` // home sides vs the number
	Teams      []TeamATS          `json:"teams"`
}

// BuildSpreadAccuracy folds settled spread results into per-team ATS records,
// the away side seeing the flipped settlement, ranked by cover rate.
func BuildSpreadAccuracy(facts []domain.GameFact) SpreadAccuracyReport {
	overall := stats.TallySpreads(facts)

	var leagueHome stats.SpreadTally
	home := stats.NewSpreadSet()
	away := stats.NewSpreadSet()
	for _, g := range facts {
		res, ok := stats.SettledSpread(g)
		if !ok {
			continue
		}
		leagueHome.Add(res)
		home.Get(g.HomeTeam.Name).Add(res)
		away.Get(g.AwayTeam.Name).Add(stats.FlipSpreadResult(res))
	}

	teams := make([]TeamATS, 0)
	rates := make(map[string]float64)
	for _, tally := range overall.Ordered() {
		entry := TeamATS{
			Team:    tally.Key,
			Overall: tally.Record(),
			Home:    stats.TallyMarketRecord(0, 0, 0),
			Away:    stats.TallyMarketRecord(0, 0, 0),
		}
		if t, ok := home.Lookup(tally.Key); ok {
			entry.Home = t.Record()
		}
		if t, ok := away.Lookup(tally.Key); ok {
			entry.Away = t.Record()
		}
		rates[tally.Key] = tally.CoverRate()
		teams = append(teams, entry)
	}
	ranked := stats.RankTopN(teams, func(t TeamATS) float64 { return rates[t.Team] }, -1, true)

	return SpreadAccuracyReport{
		LeagueHome: leagueHome.Record(),
		Teams:      ranked,
	}
}
