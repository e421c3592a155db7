package stats

import "nfl-records-service/internal/domain"

// RecentWindow caps the "recent games" sub-list on matchup views.
const RecentWindow = 10

// NormalizePair orders two team names deterministically so that the same
// pairing accumulates into a single entry regardless of home/away assignment.
func NormalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// PairTally accumulates head-to-head results for one normalized pair.
// TeamA sorts before TeamB.
type PairTally struct {
	TeamA   string
	TeamB   string
	AWins   int
	BWins   int
	Ties    int
	APoints int
	BPoints int
}

// Add folds one game between the pair's two teams.
func (p *PairTally) Add(g domain.GameFact) {
	aFor, _, ok := g.TeamScore(p.TeamA)
	if !ok {
		return
	}
	bFor, _, ok := g.TeamScore(p.TeamB)
	if !ok {
		return
	}
	p.APoints += aFor
	p.BPoints += bFor
	switch {
	case aFor > bFor:
		p.AWins++
	case bFor > aFor:
		p.BWins++
	default:
		p.Ties++
	}
}

// Games returns the number of meetings folded in.
func (p *PairTally) Games() int {
	return p.AWins + p.BWins + p.Ties
}

// PairSet is an insertion-ordered collection of head-to-head tallies keyed by
// normalized pair.
type PairSet struct {
	order []string
	byKey map[string]*PairTally
}

// NewPairSet constructs an empty set.
func NewPairSet() *PairSet {
	return &PairSet{byKey: make(map[string]*PairTally)}
}

// Get returns the tally for a pair, creating it in first-seen order.
func (s *PairSet) Get(a, b string) *PairTally {
	first, second := NormalizePair(a, b)
	key := first + "|" + second
	if t, ok := s.byKey[key]; ok {
		return t
	}
	t := &PairTally{TeamA: first, TeamB: second}
	s.byKey[key] = t
	s.order = append(s.order, key)
	return t
}

// Ordered returns the tallies in first-seen order.
func (s *PairSet) Ordered() []*PairTally {
	out := make([]*PairTally, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// TallyPairs folds every fact into one head-to-head tally per normalized pair.
func TallyPairs(facts []domain.GameFact) *PairSet {
	set := NewPairSet()
	for _, g := range facts {
		set.Get(g.HomeTeam.Name, g.AwayTeam.Name).Add(g)
	}
	return set
}
