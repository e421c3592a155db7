package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// SlotStats summarizes games in one primetime slot.
type SlotStats struct {
	Slot       string       `json:"slot"`
	Games      int          `json:"games"`
	AvgTotal   string       `json:"avgTotal"`
	HomeRecord stats.Record `json:"homeRecord"`
}

// PrimetimeTeamStats is one team's record under the lights.
type PrimetimeTeamStats struct {
	Team   string       `json:"team"`
	Record stats.Record `json:"record"`
}

// PrimetimeRecordsReport covers only facts carrying a primetime slot label.
type PrimetimeRecordsReport struct {
	Slots []SlotStats          `json:"slots"`
	Teams []PrimetimeTeamStats `json:"teams"`
}

// BuildPrimetimeRecords tallies primetime games per slot and per team, teams
// ranked by primetime win rate.
func BuildPrimetimeRecords(facts []domain.GameFact) PrimetimeRecordsReport {
	primetime := stats.Filter(facts, func(g domain.GameFact) bool { return g.Primetime != "" })

	slotOrder := make([]string, 0)
	type slotAcc struct {
		games  int
		points int
		home   stats.TeamTally
	}
	slots := make(map[string]*slotAcc)
	for _, g := range primetime {
		a, ok := slots[g.Primetime]
		if !ok {
			a = &slotAcc{}
			slots[g.Primetime] = a
			slotOrder = append(slotOrder, g.Primetime)
		}
		a.games++
		a.points += g.HomeScore + g.AwayScore
		a.home.Add(g.HomeScore, g.AwayScore)
	}

	slotStats := make([]SlotStats, 0, len(slotOrder))
	for _, slot := range slotOrder {
		a := slots[slot]
		slotStats = append(slotStats, SlotStats{
			Slot:       slot,
			Games:      a.games,
			AvgTotal:   stats.Avg(a.points, a.games),
			HomeRecord: a.home.Record(),
		})
	}

	tallies := stats.TallyTeams(primetime)
	teams := make([]PrimetimeTeamStats, 0, tallies.Len())
	for _, tally := range tallies.Ordered() {
		teams = append(teams, PrimetimeTeamStats{Team: tally.Key, Record: tally.Record()})
	}
	ranked := stats.RankTopN(teams, func(p PrimetimeTeamStats) float64 {
		t, _ := tallies.Lookup(p.Team)
		return t.WinRate()
	}, -1, true)

	return PrimetimeRecordsReport{Slots: slotStats, Teams: ranked}
}
