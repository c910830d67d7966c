package gauge

import "math"

// MaxValue is the top of the actuation domain. Every scaled value is an
// integer in [0, MaxValue] because the wire frame carries a single byte.
const MaxValue = 255

// Range holds the configured actuation bounds for a channel. Min and Max
// may be a strict subset of [0,255] when a gauge's mechanical travel does
// not cover the full drive range.
type Range struct {
	Min float64
	Max float64
}

// clampByte bounds v to the channel range and the actuation domain,
// then rounds to the nearest integer.
func (r Range) clampByte(v float64) int {
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	if v < 0 {
		v = 0
	}
	if v > MaxValue {
		v = MaxValue
	}
	return int(math.Round(v))
}

// ScalePercent maps a percentage in [0,100] linearly onto the range.
// 0% maps exactly to Min and 100% exactly to Max; out-of-range inputs clamp.
// Used for the CPU and memory channels.
func ScalePercent(pct float64, r Range) int {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return r.clampByte(r.Min + pct/100*(r.Max-r.Min))
}

// NetScale maps the signed network rate onto the gauge through a zero-point.
// The two half-ranges are scaled independently so a rate of exactly zero
// lands on Zero regardless of Min/Max asymmetry.
type NetScale struct {
	Min       float64
	Zero      float64
	Max       float64
	FullScale float64 // rate magnitude that deflects the needle fully
	Absolute  bool    // ignore direction, scale |rate| from Min to Max
}

// Scale converts a signed rate (positive = net receive) to an actuation value.
// Rates beyond ±FullScale clamp to Max/Min respectively.
func (s NetScale) Scale(rate float64) int {
	r := Range{Min: s.Min, Max: s.Max}
	if s.FullScale <= 0 {
		return r.clampByte(s.Zero)
	}

	frac := rate / s.FullScale
	if frac > 1 {
		frac = 1
	}
	if frac < -1 {
		frac = -1
	}

	if s.Absolute {
		return r.clampByte(s.Min + math.Abs(frac)*(s.Max-s.Min))
	}
	if frac >= 0 {
		return r.clampByte(s.Zero + frac*(s.Max-s.Zero))
	}
	return r.clampByte(s.Zero + frac*(s.Zero-s.Min))
}

// DiskScale maps a non-negative disk rate linearly onto the range,
// clamping at FullScale.
type DiskScale struct {
	Range
	FullScale float64 // rate in sectors/second for full deflection
}

// Scale converts a sectors-per-second rate to an actuation value.
func (s DiskScale) Scale(rate float64) int {
	if s.FullScale <= 0 || rate <= 0 {
		return s.clampByte(s.Min)
	}
	frac := rate / s.FullScale
	if frac > 1 {
		frac = 1
	}
	return s.clampByte(s.Min + frac*(s.Max-s.Min))
}
