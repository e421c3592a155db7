package stats

import "nfl-records-service/internal/domain"

// TeamTally accumulates one entity's results across a fold. The key is
// usually a team name but the same accumulator serves divisions, conferences
// and franchise lineages.
type TeamTally struct {
	Key           string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     int
	PointsAgainst int
}

// Add records one game from this entity's perspective. Ties increment the tie
// counter only, never wins or losses.
func (t *TeamTally) Add(pointsFor, pointsAgainst int) {
	t.PointsFor += pointsFor
	t.PointsAgainst += pointsAgainst
	switch {
	case pointsFor > pointsAgainst:
		t.Wins++
	case pointsFor < pointsAgainst:
		t.Losses++
	default:
		t.Ties++
	}
}

// Games returns the number of games folded in.
func (t *TeamTally) Games() int {
	return t.Wins + t.Losses + t.Ties
}

// Record finalizes the tally.
func (t *TeamTally) Record() Record {
	return TallyRecord(t.Wins, t.Losses, t.Ties)
}

// WinRate is wins over games played as a raw float, 0 for an empty tally.
func (t *TeamTally) WinRate() float64 {
	if t.Games() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Games())
}

// TallySet is an insertion-ordered collection of per-key tallies. It is built
// once per call and discarded; nothing here is shared between invocations.
type TallySet struct {
	order []string
	byKey map[string]*TeamTally
}

// NewTallySet constructs an empty set.
func NewTallySet() *TallySet {
	return &TallySet{byKey: make(map[string]*TeamTally)}
}

// Get returns the tally for key, creating it in first-seen order.
func (s *TallySet) Get(key string) *TeamTally {
	if t, ok := s.byKey[key]; ok {
		return t
	}
	t := &TeamTally{Key: key}
	s.byKey[key] = t
	s.order = append(s.order, key)
	return t
}

// Lookup returns the tally for key without creating one.
func (s *TallySet) Lookup(key string) (*TeamTally, bool) {
	t, ok := s.byKey[key]
	return t, ok
}

// Ordered returns the tallies in first-seen order.
func (s *TallySet) Ordered() []*TeamTally {
	out := make([]*TeamTally, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// Len returns the number of keys in the set.
func (s *TallySet) Len() int {
	return len(s.order)
}

// TallyTeams folds every fact into one tally per team. Both participants are
// updated symmetrically: the home side counts the home score as points for,
// the away side the away score.
func TallyTeams(facts []domain.GameFact) *TallySet {
	return TallyGrouped(facts, func(p domain.Participant) string { return p.Name })
}

// TallyGrouped folds every fact into one tally per group, where key derives
// the group from a participant (team name, division, conference, franchise).
// Keys that come back empty are skipped.
func TallyGrouped(facts []domain.GameFact, key func(domain.Participant) string) *TallySet {
	set := NewTallySet()
	for _, g := range facts {
		if home := key(g.HomeTeam); home != "" {
			set.Get(home).Add(g.HomeScore, g.AwayScore)
		}
		if away := key(g.AwayTeam); away != "" {
			set.Get(away).Add(g.AwayScore, g.HomeScore)
		}
	}
	return set
}
