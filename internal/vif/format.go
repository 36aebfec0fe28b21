package vif

import (
	"math"
	"strconv"
)

// tieEpsilon treats near-exact halves as exact ties despite binary
// floating-point error in the scaled value.
const tieEpsilon = 1e-7

// FormatFixed renders v with the given number of decimals using
// round-half-to-even, computed explicitly rather than trusting the
// platform rounding mode.
func FormatFixed(v float64, decimals int) string {
	scale := math.Pow(10, float64(decimals))
	scaled := v * scale
	sign := 1.0
	if scaled < 0 {
		sign = -1
	}
	abs := math.Abs(scaled)
	whole := math.Floor(abs)
	frac := abs - whole

	var rounded float64
	switch {
	case frac > 0.5+tieEpsilon:
		rounded = whole + 1
	case frac < 0.5-tieEpsilon:
		rounded = whole
	case math.Mod(whole, 2) == 0:
		rounded = whole
	default:
		rounded = whole + 1
	}
	return strconv.FormatFloat(sign*rounded/scale, 'f', decimals, 64)
}

// formatPackedFloat renders one packed-float field. Sentinel and
// overload values render as the empty field, never a number.
func formatPackedFloat(raw uint16, long bool) string {
	v := decodePackedFloat(raw)
	if isSpecial(v) || isOverload(v) {
		return ""
	}
	return FormatFixed(float64(v)/float16Divisor, floatDecimals(long))
}

// formatPackedInt16 renders one plain signed 16-bit field.
func formatPackedInt16(v int16, long bool) string {
	if isSpecial(int64(v)) {
		return ""
	}
	return FormatFixed(float64(v)/int16Divisor, intDecimals(long))
}

func floatDecimals(long bool) int {
	if long {
		return 4
	}
	return 2
}

func intDecimals(long bool) int {
	if long {
		return 4
	}
	return 1
}
