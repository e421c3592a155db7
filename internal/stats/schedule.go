package stats

import "nfl-records-service/internal/domain"

// ScheduleStrength is the strength-of-schedule view for one team-season.
// Each figure is the average overall win rate of the qualifying opponents,
// formatted to three decimals, defaulting to EvenPct when no opponents
// qualify.
type ScheduleStrength struct {
	Team               string `json:"team"`
	Season             int    `json:"season"`
	PlayedOpponents    int    `json:"playedOpponents"`
	RemainingOpponents int    `json:"remainingOpponents"`
	Past               string `json:"past"`
	Future             string `json:"future"`
	Combined           string `json:"combined"`
}

// StrengthOfSchedule partitions the team's season opponents into already
// played and remaining, then averages each opponent's overall win rate
// computed from the full fact set (not season-scoped). Played/remaining is
// inferred from the scoreline: a 0-0 fact reads as an unplayed fixture. That
// heuristic cannot distinguish a real 0-0 final and is preserved as a known
// limitation of the source data.
func StrengthOfSchedule(all []domain.GameFact, team string, season int) ScheduleStrength {
	overall := TallyTeams(all)

	var past, future []float64
	for _, g := range SeasonFacts(all, season) {
		opp, ok := g.Opponent(team)
		if !ok {
			continue
		}
		rate := 0.0
		if t, ok := overall.Lookup(opp.Name); ok {
			rate = t.WinRate()
		}
		if g.Played() {
			past = append(past, rate)
		} else {
			future = append(future, rate)
		}
	}

	return ScheduleStrength{
		Team:               team,
		Season:             season,
		PlayedOpponents:    len(past),
		RemainingOpponents: len(future),
		Past:               averageOrEven(past),
		Future:             averageOrEven(future),
		Combined:           averageOrEven(append(append([]float64{}, past...), future...)),
	}
}

func averageOrEven(rates []float64) string {
	if len(rates) == 0 {
		return EvenPct
	}
	sum := 0.0
	for _, r := range rates {
		sum += r
	}
	return PctValue(sum / float64(len(rates)))
}
