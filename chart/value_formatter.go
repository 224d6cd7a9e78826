package chart

import (
	"strconv"
	"strings"
)

// ValueFormatter turns a bar value or tick value into display text.
type ValueFormatter func(v float64) string

// FixedFormatter formats with a fixed number of decimals followed by suffix,
// so FixedFormatter(3, "с")(3.00488) is "3.005с".
func FixedFormatter(decimals int, suffix string) ValueFormatter {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', decimals, 64) + suffix
	}
}

// ShortestFormatter formats with the fewest digits that round-trip the
// value, followed by suffix. Like Python's float repr it keeps a fractional
// part on whole numbers ("16.0") and switches to exponent form below 1e-4
// and from 1e16 up ("5e-05").
func ShortestFormatter(suffix string) ValueFormatter {
	return func(v float64) string {
		return shortest(v) + suffix
	}
}

func shortest(v float64) string {
	if !isFinite(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.LastIndexByte(e, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// PercentValueFormatter formats a ratio as a percentage with two decimals.
func PercentValueFormatter(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 2, 64) + "%"
}
