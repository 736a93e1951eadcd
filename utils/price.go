package utils

import "math"

// Round2 rounds a price to two decimal places. Every computed total
// goes through this so sums like 30 + 3 + 5 come out as 38.00 exactly.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
