package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to tell a float64 apart from any
// two-or-three place decimal tie it is not exactly equal to.
const exactDigits = 40

// Clamp bounds value into [lo, hi]. Callers pass lo <= hi.
func Clamp(value, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, value))
}

// ClampInt bounds value into [lo, hi]
func ClampInt(value, lo, hi int) int {
	return min(hi, max(lo, value))
}

// RoundTo rounds the exact binary value of value to the given number of
// decimal places, half away from zero. 1.005 is stored just below 1.005 and
// rounds to 1.00; 0.125 is stored exactly and rounds to 0.13.
func RoundTo(value float64, places int) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	exact := decimal.RequireFromString(strconv.FormatFloat(value, 'f', exactDigits, 64))
	rounded, _ := exact.Round(int32(places)).Float64()
	return rounded
}
