package aggregate

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const places = 2

// exactDigits covers the longest fractional expansion of a float64.
const exactDigits = 1074

// round2 rounds the exact binary value of v to 2 decimals, ties to even.
// NaN and infinities are returned unchanged.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exact := decimal.RequireFromString(new(big.Float).SetFloat64(v).Text('f', exactDigits))
	return exact.RoundBank(places).InexactFloat64()
}
