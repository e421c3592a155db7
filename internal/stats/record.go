package stats

// Record is a finalized win/loss/tie tally with its formatted percentage.
type Record struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ties   int    `json:"ties"`
	Pct    string `json:"pct"`
}

// TallyRecord finalizes a win/loss/tie count. Pct is wins over all decisions
// (ties included in the denominator); an empty tally yields the EmptyPct
// sentinel.
func TallyRecord(wins, losses, ties int) Record {
	return Record{
		Wins:   wins,
		Losses: losses,
		Ties:   ties,
		Pct:    Pct(wins, wins+losses+ties),
	}
}

// Games returns the number of decisions in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// MarketRecord is a finalized against-the-market tally (ATS or over/under),
// with pushes in place of ties.
type MarketRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pushes int    `json:"pushes"`
	Pct    string `json:"pct"`
}

// TallyMarketRecord finalizes a market tally under the same percentage law as
// TallyRecord: pushes count in the denominator, empty tallies yield EmptyPct.
func TallyMarketRecord(wins, losses, pushes int) MarketRecord {
	return MarketRecord{
		Wins:   wins,
		Losses: losses,
		Pushes: pushes,
		Pct:    Pct(wins, wins+losses+pushes),
	}
}

// Games returns the number of settled bets in the record.
func (r MarketRecord) Games() int {
	return r.Wins + r.Losses + r.Pushes
}
