package stats

import "fmt"

// Percentage sentinels. EmptyPct is the zero-denominator sentinel used across
// every report: exactly three decimals with no leading zero digit, distinct
// from the formatted "0.000". EvenPct is the neutral schedule-strength default.
const (
	EmptyPct = ".000"
	EvenPct  = ".500"
)

// Pct formats wins over a denominator to exactly three decimal places.
// A zero denominator yields EmptyPct, never "0.000".
func Pct(wins, denom int) string {
	if denom == 0 {
		return EmptyPct
	}
	return fmt.Sprintf("%.3f", float64(wins)/float64(denom))
}

// PctValue formats an already-computed ratio to three decimal places.
func PctValue(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// Rate formats count/total as a percentage with two decimal places,
// e.g. "52.38". A zero total yields "0.00".
func Rate(count, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(count)/float64(total)*100)
}

// Avg formats sum/count to one decimal place. A zero count yields "0.0".
func Avg(sum, count int) string {
	if count == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(count))
}

// Fixed1 and Fixed2 format a float to one and two decimal places.
func Fixed1(v float64) string { return fmt.Sprintf("%.1f", v) }

func Fixed2(v float64) string { return fmt.Sprintf("%.2f", v) }
