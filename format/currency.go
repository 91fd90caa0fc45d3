// Package format renders currency amounts the way the terminal UI shows
// them: compact, with k/M suffixes.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency formats a dollar amount compactly: values of a million or
// more collapse to "M", thousands to "k" (one decimal, trailing .0
// stripped), everything below a thousand is floored to whole dollars.
// A leading minus survives the abbreviation: -1500 → "-$1.5k".
func Currency(v float64) string {
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1_000_000:
		return sign + "$" + trimTrailingZero(abs/1_000_000) + "M"
	case abs >= 1_000:
		return sign + "$" + trimTrailingZero(abs/1_000) + "k"
	}
	return fmt.Sprintf("%s$%d", sign, int64(math.Floor(abs)))
}

// Signed is Currency with an explicit "+" on non-negative amounts, used
// for P/L columns.
func Signed(v float64) string {
	if v >= 0 {
		return "+" + Currency(v)
	}
	return Currency(v)
}

func trimTrailingZero(x float64) string {
	s := strconv.FormatFloat(x, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
