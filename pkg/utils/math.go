package utils

import "math"

// RoundDecimal rounds half away from zero to the given number of decimals.
func RoundDecimal(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
