package stats

// Bucket is one labeled half-open interval [Min, Max).
type Bucket struct {
	Label string
	Min   float64
	Max   float64
}

// Buckets is an ordered list of intervals. Boundaries are half-point-shifted
// so integer line values never land on an edge.
type Buckets []Bucket

// Assign places a value into the first matching bucket. ok is false when the
// value falls outside every interval.
func (b Buckets) Assign(v float64) (string, bool) {
	for _, bucket := range b {
		if v >= bucket.Min && v < bucket.Max {
			return bucket.Label, true
		}
	}
	return "", false
}

// Labels returns the bucket labels in order, for building fixed-shape outputs.
func (b Buckets) Labels() []string {
	labels := make([]string, 0, len(b))
	for _, bucket := range b {
		labels = append(labels, bucket.Label)
	}
	return labels
}

// SpreadBuckets classifies the absolute value of a point spread. A spread of
// exactly 0 is a pick-em, and the pick-em bucket runs to the 1.5 cutoff.
var SpreadBuckets = Buckets{
	{Label: "Pick-em (±0-1)", Min: 0, Max: 1.5},
	{Label: "Field Goal (1.5-3)", Min: 1.5, Max: 3.5},
	{Label: "Medium (3.5-6)", Min: 3.5, Max: 6.5},
	{Label: "Touchdown (6.5-9)", Min: 6.5, Max: 9.5},
	{Label: "Double Digits (9.5+)", Min: 9.5, Max: 100},
}

// TotalBuckets classifies an over/under line.
var TotalBuckets = Buckets{
	{Label: "Low (under 37.5)", Min: 0, Max: 37.5},
	{Label: "Mid (37.5-44)", Min: 37.5, Max: 44.5},
	{Label: "High (44.5-50)", Min: 44.5, Max: 50.5},
	{Label: "Shootout (50.5+)", Min: 50.5, Max: 150},
}

// TemperatureBuckets classifies game-time temperature in Fahrenheit.
var TemperatureBuckets = Buckets{
	{Label: "Freezing (20 and below)", Min: -60, Max: 20.5},
	{Label: "Cold (21-40)", Min: 20.5, Max: 40.5},
	{Label: "Cool (41-60)", Min: 40.5, Max: 60.5},
	{Label: "Mild (61-75)", Min: 60.5, Max: 75.5},
	{Label: "Hot (76+)", Min: 75.5, Max: 150},
}

// MarginBuckets classifies a final margin of victory. Margin 0 is a tie.
var MarginBuckets = Buckets{
	{Label: "Tie", Min: 0, Max: 0.5},
	{Label: "One Score (1-3)", Min: 0.5, Max: 3.5},
	{Label: "Close (4-8)", Min: 3.5, Max: 8.5},
	{Label: "Comfortable (9-16)", Min: 8.5, Max: 16.5},
	{Label: "Blowout (17+)", Min: 16.5, Max: 200},
}
