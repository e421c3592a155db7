package reports

import (
	"nfl-records-service/internal/domain"
	"nfl-records-service/internal/stats"
)

// TemperatureBandStats summarizes games inside one temperature band.
type TemperatureBandStats struct {
	Band       string       `json:"band"`
	Games      int          `json:"games"`
	AvgTotal   string       `json:"avgTotal"`
	HomeRecord stats.Record `json:"homeRecord"`
}

// ConditionStats summarizes games under one recorded condition.
type ConditionStats struct {
	Condition  string       `json:"condition"`
	Games      int          `json:"games"`
	AvgTotal   string       `json:"avgTotal"`
	HomeRecord stats.Record `json:"homeRecord"`
}

// WeatherImpactReport relates game environment to scoring and home results.
// Facts with no weather data are excluded, not treated as zero-degree games.
type WeatherImpactReport struct {
	TemperatureBands []TemperatureBandStats `json:"temperatureBands"`
	Conditions       []ConditionStats       `json:"conditions"`
}

// BuildWeatherImpact buckets facts by recorded temperature and groups them by
// condition. Every temperature band appears in the output even with zero
// games, so the shape is fixed.
func BuildWeatherImpact(facts []domain.GameFact) WeatherImpactReport {
	type acc struct {
		games  int
		points int
		home   stats.TeamTally
	}

	bands := make(map[string]*acc, len(stats.TemperatureBuckets))
	for _, label := range stats.TemperatureBuckets.Labels() {
		bands[label] = &acc{}
	}
	condOrder := make([]string, 0)
	conds := make(map[string]*acc)

	for _, g := range facts {
		if g.Weather == nil {
			continue
		}
		if g.Weather.Temperature != nil {
			if label, ok := stats.TemperatureBuckets.Assign(float64(*g.Weather.Temperature)); ok {
				a := bands[label]
				a.games++
				a.points += g.HomeScore + g.AwayScore
				a.home.Add(g.HomeScore, g.AwayScore)
			}
		}
		if g.Weather.Condition != "" {
			a, ok := conds[g.Weather.Condition]
			if !ok {
				a = &acc{}
				conds[g.Weather.Condition] = a
				condOrder = append(condOrder, g.Weather.Condition)
			}
			a.games++
			a.points += g.HomeScore + g.AwayScore
			a.home.Add(g.HomeScore, g.AwayScore)
		}
	}

	bandStats := make([]TemperatureBandStats, 0, len(stats.TemperatureBuckets))
	for _, label := range stats.TemperatureBuckets.Labels() {
		a := bands[label]
		bandStats = append(bandStats, TemperatureBandStats{
			Band:       label,
			Games:      a.games,
			AvgTotal:   stats.Avg(a.points, a.games),
			HomeRecord: a.home.Record(),
		})
	}

	condStats := make([]ConditionStats, 0, len(condOrder))
	for _, condition := range condOrder {
		a := conds[condition]
		condStats = append(condStats, ConditionStats{
			Condition:  condition,
			Games:      a.games,
			AvgTotal:   stats.Avg(a.points, a.games),
			HomeRecord: a.home.Record(),
		})
	}

	return WeatherImpactReport{TemperatureBands: bandStats, Conditions: condStats}
}
