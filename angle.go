package xrview

import "math"

// NormalizeDegrees wraps an angle into the canonical [0, 360) range.
// Negative inputs wrap upward, so NormalizeDegrees(-90) == 270.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// ShortestArc returns the signed delta in (-180, 180] that rotates from
// one angle to another along the shorter arc, so that
// NormalizeDegrees(from+ShortestArc(from, to)) == NormalizeDegrees(to).
func ShortestArc(from, to float64) float64 {
	delta := NormalizeDegrees(to) - NormalizeDegrees(from)
	if delta > 180 {
		delta -= 360
	} else if delta <= -180 {
		delta += 360
	}
	return delta
}
