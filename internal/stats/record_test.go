package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyRecordFormatting(t *testing.T) {
	cases := []struct {
		name    string
		w, l, d int
		want    string
	}{
		{"empty sentinel", 0, 0, 0, ".000"},
		{"zero wins with games", 0, 4, 0, "0.000"},
		{"one of each", 1, 1, 1, "0.333"},
		{"perfect", 3, 0, 0, "1.000"},
		{"ties in denominator", 2, 1, 1, "0.500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TallyRecord(tc.w, tc.l, tc.d)
			assert.Equal(t, tc.want, got.Pct)
			assert.Equal(t, tc.w+tc.l+tc.d, got.Games())
		})
	}
}

func TestEmptySentinelDistinctFromZero(t *testing.T) {
	assert.Equal(t, ".000", TallyRecord(0, 0, 0).Pct)
	assert.NotEqual(t, "0.000", TallyRecord(0, 0, 0).Pct)
}

func TestTallyMarketRecord(t *testing.T) {
	assert.Equal(t, ".000", TallyMarketRecord(0, 0, 0).Pct)

	rec := TallyMarketRecord(5, 4, 1)
	assert.Equal(t, "0.500", rec.Pct)
	assert.Equal(t, 10, rec.Games())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "0.00", Rate(3, 0))
	assert.Equal(t, "52.38", Rate(11, 21))
	assert.Equal(t, "0.0", Avg(10, 0))
	assert.Equal(t, "21.3", Avg(64, 3))
	assert.Equal(t, "0.500", PctValue(0.5))
}
