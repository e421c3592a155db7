package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// weekdayOrder fixes the output order for day-of-week grouping.
var weekdayOrder = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayStats summarizes games played on one day of the week.
type DayStats struct {
	Day        string       `json:"day"`
	Games      int          `json:"games"`
	AvgTotal   string       `json:"avgTotal"`
	HomeRecord stats.Record `json:"homeRecord"`
}

// DayOfWeekReport groups games by day of week, Sunday first.
type DayOfWeekReport struct {
	Days []DayStats `json:"days"`
}

// BuildDayOfWeek tallies games per day of week. Only days that appear in the
// fact set are emitted.
func BuildDayOfWeek(facts []domain.GameFact) DayOfWeekReport {
	type acc struct {
		games  int
		points int
		home   stats.TeamTally
	}
	days := make(map[string]*acc)
	for _, g := range facts {
		if g.Day == "" {
			continue
		}
		a, ok := days[g.Day]
		if !ok {
			a = &acc{}
			days[g.Day] = a
		}
		a.games++
		a.points += g.HomeScore + g.AwayScore
		a.home.Add(g.HomeScore, g.AwayScore)
	}

	out := make([]DayStats, 0, len(days))
	for _, day := range weekdayOrder {
		a, ok := days[day]
		if !ok {
			continue
		}
		out = append(out, DayStats{
			Day:        day,
			Games:      a.games,
			AvgTotal:   stats.Avg(a.points, a.games),
			HomeRecord: a.home.Record(),
		})
	}

	return DayOfWeekReport{Days: out}
}
