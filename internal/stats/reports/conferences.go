package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// ConferenceRecord is one conference's overall record.
type ConferenceRecord struct {
	Conference    string       `json:"conference"`
	Record        stats.Record `json:"record"`
	PointsFor     int          `json:"pointsFor"`
	PointsAgainst int          `json:"pointsAgainst"`
}

// ConferenceSeason is the cross-conference series result for one season.
type ConferenceSeason struct {
	Season int            `json:"season"`
	Series []DivisionPair `json:"series"`
	Winner string         `json:"winner"` // conference with most cross wins, "Split" on a tie
}

// ConferenceBattlesReport tabulates conference records and the season-by-
// season cross-conference series.
type ConferenceBattlesReport struct {
	Conferences []ConferenceRecord `json:"conferences"`
	Seasons     []ConferenceSeason `json:"seasons"`
}

// BuildConferenceBattles folds per-conference records from every fact; the
// cross-conference series considers only facts whose participants belong to
// different conferences.
func BuildConferenceBattles(facts []domain.GameFact) ConferenceBattlesReport {
	overall := stats.TallyGrouped(facts, func(p domain.Participant) string { return p.Conference })

	conferences := make([]ConferenceRecord, 0, overall.Len())
	for _, tally := range overall.Ordered() {
		conferences = append(conferences, ConferenceRecord{
			Conference:    tally.Key,
			Record:        tally.Record(),
			PointsFor:     tally.PointsFor,
			PointsAgainst: tally.PointsAgainst,
		})
	}
	ranked := stats.RankTopN(conferences, func(c ConferenceRecord) float64 {
		t, _ := overall.Lookup(c.Conference)
		return t.WinRate()
	}, -1, true)

	seasons := make([]ConferenceSeason, 0)
	for _, season := range stats.Seasons(facts) {
		series := crossGroupPairs(stats.SeasonFacts(facts, season), func(p domain.Participant) string {
			return p.Conference
		})
		if len(series) == 0 {
			continue
		}
		seasons = append(seasons, ConferenceSeason{
			Season: season,
			Series: series,
			Winner: seriesWinner(series),
		})
	}

	return ConferenceBattlesReport{Conferences: ranked, Seasons: seasons}
}

func seriesWinner(series []DivisionPair) string {
	wins := make(map[string]int)
	for _, pair := range series {
		wins[pair.DivisionA] += pair.AWins
		wins[pair.DivisionB] += pair.BWins
	}

	winner, best, split := "", -1, false
	for _, pair := range series {
		for _, conf := range []string{pair.DivisionA, pair.DivisionB} {
			switch {
			case wins[conf] > best:
				winner, best, split = conf, wins[conf], false
			case wins[conf] == best && conf != winner:
				split = true
			}
		}
	}
	if split || winner == "" {
		return "Split"
	}
	return winner
}
