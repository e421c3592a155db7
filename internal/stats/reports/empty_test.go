package reports

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

// Every assembler must return its full shape on an empty fact set: zero
// counts, sentinel percentages, and empty (never nil) list fields.
func TestAllAssemblersEmptyInput(t *testing.T) {
	empty := []domain.GameFact{}

	results := map[string]any{
		"standings":      BuildStandings(empty),
		"seasonRecaps":   BuildSeasonRecaps(empty),
		"matchup":        BuildMatchup(empty, "Bears", "Packers"),
		"rivalries":      BuildRivalries(empty),
		"playoffs":       BuildPlayoffStats(empty),
		"championships":  BuildChampionshipHistory(empty),
		"divisions":      BuildDivisionDominance(empty),
		"conferences":    BuildConferenceBattles(empty),
		"weather":        BuildWeatherImpact(empty),
		"primetime":      BuildPrimetimeRecords(empty),
		"dayOfWeek":      BuildDayOfWeek(empty),
		"homeField":      BuildHomeFieldAdvantage(empty),
		"spreadAccuracy": BuildSpreadAccuracy(empty),
		"spreadBuckets":  BuildSpreadBuckets(empty),
		"favorites":      BuildFavoriteUnderdog(empty),
		"overUnder":      BuildOverUnderTrends(empty),
		"streaks":        BuildStreakLeaders(empty),
		"consistency":    BuildConsistencyIndex(empty),
		"pythagorean":    BuildPythagorean(empty),
		"schedule":       BuildStrengthOfSchedule(empty, 2023),
		"power":          BuildPowerRankings(empty, 2023),
		"scoring":        BuildScoringTrends(empty),
		"margins":        BuildMarginProfiles(empty),
		"ties":           BuildTieHistory(empty),
		"franchises":     BuildFranchiseHistory(empty, nil),
		"recentForm":     BuildRecentForm(empty),
	}
	require.Len(t, results, 26)

	for name, result := range results {
		t.Run(name, func(t *testing.T) {
			assertNoNilSlices(t, reflect.ValueOf(result), name)
		})
	}
}

// assertNoNilSlices walks a result value and fails on any nil slice field.
func assertNoNilSlices(t *testing.T, v reflect.Value, path string) {
	t.Helper()
	switch v.Kind() {
	case reflect.Slice:
		assert.False(t, v.IsNil(), "nil slice at %s", path)
		for i := 0; i < v.Len(); i++ {
			assertNoNilSlices(t, v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			assertNoNilSlices(t, v.Field(i), path+"."+v.Type().Field(i).Name)
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			assertNoNilSlices(t, v.Elem(), path)
		}
	}
}

func TestEmptyInputZeroSentinels(t *testing.T) {
	standings := BuildStandings([]domain.GameFact{})
	assert.Empty(t, standings.Teams)

	homeField := BuildHomeFieldAdvantage([]domain.GameFact{})
	assert.Equal(t, ".000", homeField.LeagueHomeRecord.Pct)
	assert.Equal(t, "0.00", homeField.HomeWinRate)

	matchup := BuildMatchup([]domain.GameFact{}, "Bears", "Packers")
	assert.Equal(t, 0, matchup.Games)
	assert.Equal(t, ".000", matchup.ARecord.Pct)
	assert.Nil(t, matchup.StreakTeam)

	buckets := BuildSpreadBuckets([]domain.GameFact{})
	require.Len(t, buckets.Buckets, 5)
	for _, b := range buckets.Buckets {
		assert.Equal(t, 0, b.Games)
		assert.Equal(t, ".000", b.FavoriteSU.Pct)
	}
}

func TestAssemblersIdempotent(t *testing.T) {
	facts := []domain.GameFact{
		withSpread(game(2023, "1", "Bears", 27, "Packers", 20), -3, domain.SpreadCovered),
		game(2023, "2", "Packers", 31, "Lions", 14),
		game(2023, "3", "Lions", 20, "Bears", 20),
	}

	first := BuildStandings(facts)
	second := BuildStandings(facts)
	assert.Equal(t, first, second)

	m1 := BuildMatchup(facts, "Bears", "Packers")
	m2 := BuildMatchup(facts, "Packers", "Bears")
	assert.Equal(t, m1, m2, "matchup must be order-independent")
}
