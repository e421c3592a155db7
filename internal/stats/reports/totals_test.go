package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

func TestBuildOverUnderTrends(t *testing.T) {
	facts := []domain.GameFact{
		withTotal(game(2023, "1", "Bears", 27, "Packers", 24), 44, domain.TotalOver),
		withTotal(game(2023, "2", "Bears", 10, "Lions", 13), 41, domain.TotalUnder),
		withTotal(game(2023, "3", "Chiefs", 31, "Bills", 24), 55, domain.TotalOver),
		// No total on record, excluded.
		game(2023, "4", "Packers", 21, "Vikings", 17),
	}

	report := BuildOverUnderTrends(facts)

	assert.Equal(t, 2, report.LeagueOvers)
	assert.Equal(t, 1, report.LeagueUnders)
	assert.Equal(t, 0, report.LeaguePushes)
	assert.Equal(t, "0.667", report.OverPct)

	require.NotEmpty(t, report.Teams)
	// Chiefs and Bills are 1-for-1 on overs and outrank the Bears' split.
	assert.Equal(t, "1.000", report.Teams[0].OverPct)

	var bears TeamOverUnder
	for _, team := range report.Teams {
		if team.Team == "Bears" {
			bears = team
		}
	}
	assert.Equal(t, 1, bears.Overs)
	assert.Equal(t, 1, bears.Unders)
	assert.Equal(t, "0.500", bears.OverPct)

	require.Len(t, report.Buckets, 4)
	byLabel := make(map[string]TotalBucketStats)
	for _, b := range report.Buckets {
		byLabel[b.Bucket] = b
	}
	mid := byLabel["Mid (37.5-44)"]
	assert.Equal(t, 2, mid.Games)
	assert.Equal(t, "37.0", mid.AvgActualTotal, "(51+23)/2")
	shootout := byLabel["Shootout (50.5+)"]
	assert.Equal(t, 1, shootout.Games)
	assert.Equal(t, 1, shootout.Overs)
}
