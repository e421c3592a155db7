package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nfl-records-service/internal/domain"
)

func TestStrengthOfScheduleDefaults(t *testing.T) {
	sos := StrengthOfSchedule(nil, "A", 2023)
	assert.Equal(t, ".500", sos.Past)
	assert.Equal(t, ".500", sos.Future)
	assert.Equal(t, ".500", sos.Combined)
	assert.Equal(t, 0, sos.PlayedOpponents)
	assert.Equal(t, 0, sos.RemainingOpponents)
}

func TestStrengthOfSchedulePartitionsByScoreline(t *testing.T) {
	facts := []domain.GameFact{
		// B's history: 2-0 overall.
		game(2023, "1", "B", 21, "C", 10),
		game(2022, "5", "B", 28, "D", 7),
		// A has played B, and has an unplayed fixture against C.
		game(2023, "2", "A", 14, "B", 20),
		game(2023, "10", "A", 0, "C", 0),
	}

	sos := StrengthOfSchedule(facts, "A", 2023)
	assert.Equal(t, 1, sos.PlayedOpponents)
	assert.Equal(t, 1, sos.RemainingOpponents)

	// B is 3-0 overall; past SOS is B's win rate.
	assert.Equal(t, "1.000", sos.Past)
	// C is winless (the pending 0-0 folds in as a tie, costing no wins).
	assert.Equal(t, "0.000", sos.Future)
	assert.Equal(t, "0.500", sos.Combined)
}

func TestStrengthOfScheduleUsesFullHistoryForOpponentRates(t *testing.T) {
	facts := []domain.GameFact{
		// B went 1-0 in 2022; that history counts toward 2023 SOS.
		game(2022, "1", "B", 21, "C", 10),
		game(2023, "1", "A", 10, "B", 17),
	}

	sos := StrengthOfSchedule(facts, "A", 2023)
	assert.Equal(t, 1, sos.PlayedOpponents)
	// B is 2-0 overall (2022 win plus the win over A).
	assert.Equal(t, "1.000", sos.Past)
}
