package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nfl-records-service/internal/domain"
)

func TestBuildMatchup(t *testing.T) {
	facts := []domain.GameFact{
		withDate(game(2020, "3", "Bears", 20, "Packers", 17), "2020-09-27"),
		withDate(game(2021, "5", "Packers", 24, "Bears", 14), "2021-10-10"),
		withDate(game(2022, "2", "Bears", 21, "Packers", 21), "2022-09-18"),
		withDate(game(2023, "1", "Packers", 38, "Bears", 20), "2023-09-10"),
		// Noise: a game neither filter side plays in.
		game(2023, "1", "Lions", 30, "Vikings", 13),
	}

	report := BuildMatchup(facts, "Packers", "Bears")

	assert.Equal(t, "Bears", report.TeamA, "pair is normalized")
	assert.Equal(t, "Packers", report.TeamB)
	assert.Equal(t, 4, report.Games)
	assert.Equal(t, 1, report.AWins)
	assert.Equal(t, 2, report.BWins)
	assert.Equal(t, 1, report.Ties)
	assert.Equal(t, "0.250", report.ARecord.Pct)
	assert.Equal(t, "0.500", report.BRecord.Pct)

	require.Len(t, report.Recent, 4)
	assert.Equal(t, "2023-09-10", report.Recent[0].Date, "most recent first")
	assert.Equal(t, "2020-09-27", report.Recent[3].Date)

	require.NotNil(t, report.StreakTeam)
	assert.Equal(t, "Packers", *report.StreakTeam)
	assert.Equal(t, 1, report.StreakCount)
}

func TestBuildMatchupTieEndsStreak(t *testing.T) {
	facts := []domain.GameFact{
		game(2023, "1", "Bears", 20, "Packers", 10),
		game(2023, "5", "Packers", 14, "Bears", 24),
		game(2023, "9", "Bears", 17, "Packers", 17),
	}

	report := BuildMatchup(facts, "Bears", "Packers")
	assert.Nil(t, report.StreakTeam, "the tie wiped the Bears' run")
	assert.Equal(t, 0, report.StreakCount)
}
