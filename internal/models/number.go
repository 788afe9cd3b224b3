package models

import "strconv"

// RoundFixed rounds x to places decimals the way fixed-point formatting does.
// The exact binary value of x is rounded, so 0.35 becomes 0.3 and 0.05 becomes 0.1.
func RoundFixed(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
