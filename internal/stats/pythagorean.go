package stats

import "math"

// pythagoreanExponent is the standard sports-analytics constant for NFL
// point-differential win estimation.
const pythagoreanExponent = 2.37

// PythagoreanExpectedWins estimates wins from points for/against:
// games * PF^k / (PF^k + PA^k). A 0-0 points profile yields 0 expected wins.
func PythagoreanExpectedWins(games, pointsFor, pointsAgainst int) float64 {
	if pointsFor == 0 && pointsAgainst == 0 {
		return 0
	}
	pf := math.Pow(float64(pointsFor), pythagoreanExponent)
	pa := math.Pow(float64(pointsAgainst), pythagoreanExponent)
	return float64(games) * pf / (pf + pa)
}
