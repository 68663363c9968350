package convert

import (
	"math"

	"github.com/shopspring/decimal"
)

// Fixed renders v in fixed point notation with the given number of decimals.
// Rounding is half away from zero on the shortest decimal representation of v,
// so 1.005 becomes "1.01".
func Fixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	return decimal.NewFromFloat(v).StringFixed(int32(decimals)) //nolint:gosec // small values
}
