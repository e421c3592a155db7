package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// FranchiseRecord unifies a franchise's history across its historical names.
type FranchiseRecord struct {
	Franchise     string       `json:"franchise"`
	Names         []string     `json:"names"` // first-seen order
	Record        stats.Record `json:"record"`
	PointsFor     int          `json:"pointsFor"`
	PointsAgainst int          `json:"pointsAgainst"`
	Titles        int          `json:"titles"`
}

// FranchiseHistoryReport groups team histories by franchise key. Teams with
// no metadata entry stand alone under their own name.
type FranchiseHistoryReport struct {
	Franchises []FranchiseRecord `json:"franchises"`
}

// BuildFranchiseHistory folds records per franchise lineage using the team
// metadata's franchise keys, ranked by win rate.
func BuildFranchiseHistory(facts []domain.GameFact, teams []domain.TeamMeta) FranchiseHistoryReport {
	franchiseOf := make(map[string]string, len(teams))
	for _, meta := range teams {
		if meta.FranchiseKey != "" {
			franchiseOf[meta.Name] = meta.FranchiseKey
		}
	}
	keyFor := func(name string) string {
		if key, ok := franchiseOf[name]; ok {
			return key
		}
		return name
	}

	tallies := stats.TallyGrouped(facts, func(p domain.Participant) string {
		return keyFor(p.Name)
	})

	names := make(map[string][]string)
	titles := make(map[string]int)
	for _, g := range facts {
		for _, team := range []string{g.HomeTeam.Name, g.AwayTeam.Name} {
			key := keyFor(team)
			if !containsString(names[key], team) {
				names[key] = append(names[key], team)
			}
		}
		if g.Championship && g.Winner() != "" {
			titles[keyFor(g.Winner())]++
		}
	}

	franchises := make([]FranchiseRecord, 0, tallies.Len())
	for _, tally := range tallies.Ordered() {
		franchises = append(franchises, FranchiseRecord{
			Franchise:     tally.Key,
			Names:         names[tally.Key],
			Record:        tally.Record(),
			PointsFor:     tally.PointsFor,
			PointsAgainst: tally.PointsAgainst,
			Titles:        titles[tally.Key],
		})
	}
	ranked := stats.RankTopN(franchises, func(f FranchiseRecord) float64 {
		t, _ := tallies.Lookup(f.Franchise)
		return t.WinRate()
	}, -1, true)

	return FranchiseHistoryReport{Franchises: ranked}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
