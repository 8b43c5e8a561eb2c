package export

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a number in its shortest decimal form, keeping at
// least one fractional digit: 10 -> "10.0", 808.58 -> "808.58".
// Non-finite values render as "nan", "inf" and "-inf".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
