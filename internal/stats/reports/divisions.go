package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// DivisionRecord is one division's overall record across all of its teams'
// games, same-division meetings included.
type DivisionRecord struct {
	Division      string       `json:"division"`
	Record        stats.Record `json:"record"`
	PointsFor     int          `json:"pointsFor"`
	PointsAgainst int          `json:"pointsAgainst"`
}

// DivisionPair is one cross-division head-to-head series.
type DivisionPair struct {
	DivisionA string `json:"divisionA"`
	DivisionB string `json:"divisionB"`
	AWins     int    `json:"aWins"`
	BWins     int    `json:"bWins"`
	Ties      int    `json:"ties"`
}

// DivisionDominanceReport ranks divisions and tabulates cross-division series.
type DivisionDominanceReport struct {
	Divisions []DivisionRecord `json:"divisions"`
	Matchups  []DivisionPair   `json:"matchups"`
}

// BuildDivisionDominance folds per-division records from every fact, then a
// head-to-head table from cross-division facts only; same-division meetings
// stay out of the rivalry table but still count toward each division's own
// record.
func BuildDivisionDominance(facts []domain.GameFact) DivisionDominanceReport {
	overall := stats.TallyGrouped(facts, func(p domain.Participant) string { return p.Division })

	divisions := make([]DivisionRecord, 0, overall.Len())
	for _, tally := range overall.Ordered() {
		divisions = append(divisions, DivisionRecord{
			Division:      tally.Key,
			Record:        tally.Record(),
			PointsFor:     tally.PointsFor,
			PointsAgainst: tally.PointsAgainst,
		})
	}
	ranked := stats.RankTopN(divisions, func(d DivisionRecord) float64 {
		t, _ := overall.Lookup(d.Division)
		return t.WinRate()
	}, -1, true)

	return DivisionDominanceReport{
		Divisions: ranked,
		Matchups:  crossGroupPairs(facts, func(p domain.Participant) string { return p.Division }),
	}
}

// crossGroupPairs tallies head-to-head series between differing groups
// (divisions or conferences), skipping facts where either side's group is
// unknown or both sides share one.
func crossGroupPairs(facts []domain.GameFact, group func(domain.Participant) string) []DivisionPair {
	order := make([]string, 0)
	byKey := make(map[string]*DivisionPair)

	for _, g := range facts {
		homeGroup, awayGroup := group(g.HomeTeam), group(g.AwayTeam)
		if homeGroup == "" || awayGroup == "" || homeGroup == awayGroup {
			continue
		}
		first, second := stats.NormalizePair(homeGroup, awayGroup)
		key := first + "|" + second
		pair, ok := byKey[key]
		if !ok {
			pair = &DivisionPair{DivisionA: first, DivisionB: second}
			byKey[key] = pair
			order = append(order, key)
		}

		firstScore, secondScore := g.HomeScore, g.AwayScore
		if homeGroup != first {
			firstScore, secondScore = secondScore, firstScore
		}
		switch {
		case firstScore > secondScore:
			pair.AWins++
		case secondScore > firstScore:
			pair.BWins++
		default:
			pair.Ties++
		}
	}

	pairs := make([]DivisionPair, 0, len(order))
	for _, key := range order {
		pairs = append(pairs, *byKey[key])
	}
	return pairs
}
