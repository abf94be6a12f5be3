package rangeslider

import (
	"math"
	"strconv"
	"strings"
)

// PositionFromValue maps value in [min, max] linearly onto [0, maxOffset]
// pixels. A non-finite result (min == max, or NaN input) maps to 0.
func PositionFromValue(value, min, max, maxOffset float64) float64 {
	pos := (value - min) / (max - min) * maxOffset
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return 0
	}
	return pos
}

// ValueFromPosition maps a pixel offset onto the nearest step multiple from
// min, rounded to the decimal precision of step so that float drift never
// leaks into values (0.1+0.2 style artefacts). A zero-length track counts
// as one pixel long.
func ValueFromPosition(pos, min, max, step, maxOffset float64) float64 {
	if maxOffset == 0 {
		maxOffset = 1
	}
	percentage := pos / maxOffset
	var value float64
	if step > 0 {
		value = step*math.Round(percentage*(max-min)/step) + min
	} else {
		value = percentage*(max-min) + min
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return min
	}
	if step <= 0 {
		return value
	}
	return RoundTo(value, Precision(step))
}

// Precision returns the number of decimal digits in the shortest decimal
// representation of step: 0.25 → 2, 1 → 0, 1e-3 → 3.
func Precision(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return 0
	}
	return len(s) - i - 1
}

// RoundTo rounds v to the given number of decimal digits.
func RoundTo(v float64, digits int) float64 {
	if digits <= 0 {
		return math.Round(v)
	}
	p := math.Pow10(digits)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FitToRange brings a quantised value back inside [min, max]. Values above
// max drop by whole steps (max itself is unreachable when max-min is not a
// step multiple, as with native range inputs); values below min become min.
func FitToRange(v, min, max, step float64) float64 {
	if v > max {
		if step > 0 {
			v -= step * math.Ceil(RoundTo((v-max)/step, 9))
		}
		if v > max || v < min {
			v = max
		}
	}
	if v < min {
		v = min
	}
	return RoundTo(v, Precision(step))
}
