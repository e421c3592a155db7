package stats

import "math"

// PopulationStdDev computes the population standard deviation of the values,
// 0 for an empty input.
func PopulationStdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// ConsistencyScore maps a standard deviation to a bounded score in (0, 1]:
// 1/(1+stddev), monotonically decreasing in variance.
func ConsistencyScore(stddev float64) float64 {
	return 1 / (1 + stddev)
}
