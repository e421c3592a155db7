package stats

import "nfl-records-service/internal/domain"

// SpreadTally accumulates against-the-spread results for one entity. Facts
// with no settled spread are excluded by the fold functions, never coerced.
type SpreadTally struct {
	Key    string
	Wins   int
	Losses int
	Pushes int
}

// Add records one settlement from this entity's perspective.
func (t *SpreadTally) Add(res domain.SpreadResult) {
	switch res {
	case domain.SpreadCovered:
		t.Wins++
	case domain.SpreadLost:
		t.Losses++
	case domain.SpreadPush:
		t.Pushes++
	}
}

// Record finalizes the tally.
func (t *SpreadTally) Record() MarketRecord {
	return TallyMarketRecord(t.Wins, t.Losses, t.Pushes)
}

// CoverRate is covers over settled bets as a raw float, 0 for an empty tally.
func (t *SpreadTally) CoverRate() float64 {
	total := t.Wins + t.Losses + t.Pushes
	if total == 0 {
		return 0
	}
	return float64(t.Wins) / float64(total)
}

// SpreadSet is an insertion-ordered collection of per-key spread tallies.
type SpreadSet struct {
	order []string
	byKey map[string]*SpreadTally
}

// NewSpreadSet constructs an empty set.
func NewSpreadSet() *SpreadSet {
	return &SpreadSet{byKey: make(map[string]*SpreadTally)}
}

// Get returns the tally for key, creating it in first-seen order.
func (s *SpreadSet) Get(key string) *SpreadTally {
	if t, ok := s.byKey[key]; ok {
		return t
	}
	t := &SpreadTally{Key: key}
	s.byKey[key] = t
	s.order = append(s.order, key)
	return t
}

// Lookup returns the tally for key without creating one.
func (s *SpreadSet) Lookup(key string) (*SpreadTally, bool) {
	t, ok := s.byKey[key]
	return t, ok
}

// Ordered returns the tallies in first-seen order.
func (s *SpreadSet) Ordered() []*SpreadTally {
	out := make([]*SpreadTally, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// TallySpreads folds settled spread results into one tally per team, flipping
// the stored home-perspective settlement for the away side. Facts without a
// settled spread are skipped entirely so they shift no denominator.
func TallySpreads(facts []domain.GameFact) *SpreadSet {
	set := NewSpreadSet()
	for _, g := range facts {
		res, ok := SettledSpread(g)
		if !ok {
			continue
		}
		set.Get(g.HomeTeam.Name).Add(res)
		set.Get(g.AwayTeam.Name).Add(FlipSpreadResult(res))
	}
	return set
}

// SettledSpread extracts the home-perspective spread settlement when present.
func SettledSpread(g domain.GameFact) (domain.SpreadResult, bool) {
	if g.Market == nil || g.Market.SpreadResult == nil {
		return "", false
	}
	return *g.Market.SpreadResult, true
}

// SettledTotal extracts the over/under settlement when present.
func SettledTotal(g domain.GameFact) (domain.TotalResult, bool) {
	if g.Market == nil || g.Market.TotalResult == nil {
		return "", false
	}
	return *g.Market.TotalResult, true
}

// SpreadLine extracts the closing spread when present.
func SpreadLine(g domain.GameFact) (float64, bool) {
	if g.Market == nil || g.Market.Spread == nil {
		return 0, false
	}
	return *g.Market.Spread, true
}

// TotalLine extracts the closing over/under line when present.
func TotalLine(g domain.GameFact) (float64, bool) {
	if g.Market == nil || g.Market.OverUnder == nil {
		return 0, false
	}
	return *g.Market.OverUnder, true
}

// TotalTally accumulates over/under settlements. Totals are team-agnostic, so
// the same settlement applies to both participants.
type TotalTally struct {
	Key    string
	Overs  int
	Unders int
	Pushes int
}

// Add records one total settlement.
func (t *TotalTally) Add(res domain.TotalResult) {
	switch res {
	case domain.TotalOver:
		t.Overs++
	case domain.TotalUnder:
		t.Unders++
	case domain.TotalPush:
		t.Pushes++
	}
}

// Games returns the number of settled totals.
func (t *TotalTally) Games() int {
	return t.Overs + t.Unders + t.Pushes
}

// OverPct formats overs over settled totals under the shared percentage law.
func (t *TotalTally) OverPct() string {
	return Pct(t.Overs, t.Games())
}

// TotalSet is an insertion-ordered collection of per-key total tallies.
type TotalSet struct {
	order []string
	byKey map[string]*TotalTally
}

// NewTotalSet constructs an empty set.
func NewTotalSet() *TotalSet {
	return &TotalSet{byKey: make(map[string]*TotalTally)}
}

// Get returns the tally for key, creating it in first-seen order.
func (s *TotalSet) Get(key string) *TotalTally {
	if t, ok := s.byKey[key]; ok {
		return t
	}
	t := &TotalTally{Key: key}
	s.byKey[key] = t
	s.order = append(s.order, key)
	return t
}

// Lookup returns the tally for key without creating one.
func (s *TotalSet) Lookup(key string) (*TotalTally, bool) {
	t, ok := s.byKey[key]
	return t, ok
}

// Ordered returns the tallies in first-seen order.
func (s *TotalSet) Ordered() []*TotalTally {
	out := make([]*TotalTally, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.byKey[key])
	}
	return out
}

// TallyTotals folds settled over/under results into one tally per team.
// Facts without a settled total are skipped.
func TallyTotals(facts []domain.GameFact) *TotalSet {
	set := NewTotalSet()
	for _, g := range facts {
		res, ok := SettledTotal(g)
		if !ok {
			continue
		}
		set.Get(g.HomeTeam.Name).Add(res)
		set.Get(g.AwayTeam.Name).Add(res)
	}
	return set
}
