package record

import (
	"strconv"
	"strings"
)

// FormatNumber prints v the way a chart label shows it: the shortest
// representation that round-trips, in positional notation for ordinary
// magnitudes and exponent notation (e.g. 1e+21, 5e-7) for extreme ones.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := v
	if abs < 0 {
		abs = -abs
	}
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, ok := strings.Cut(s, "e")
		if !ok {
			return s
		}
		n, err := strconv.Atoi(exp)
		if err != nil {
			return s
		}
		sign := "+"
		if n < 0 {
			sign = "-"
			n = -n
		}
		return mantissa + "e" + sign + strconv.Itoa(n)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFixed prints v with exactly precision fractional digits.
func FormatFixed(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
