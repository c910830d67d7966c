package gauge

// Smoother rate-limits the per-tick movement of each gauge so the
// physical needle travels at a plausible angular velocity. It owns the
// only mutable per-channel state in the pipeline: the last value sent.
type Smoother struct {
	last     [NumChannels]int
	maxDelta int
}

// NewSmoother creates a smoother with all channels resting at rest.
// maxDelta is the largest allowed change per tick; a value of 255 or
// more effectively disables smoothing (one-tick convergence).
func NewSmoother(maxDelta, rest int) *Smoother {
	s := &Smoother{maxDelta: maxDelta}
	rest = clampValue(rest)
	for i := range s.last {
		s.last[i] = rest
	}
	return s
}

// Smooth moves the channel toward target by at most maxDelta and returns
// the new value. The target is clamped to [0,255] before the delta is
// computed, so the stored state can never leave the actuation domain.
func (s *Smoother) Smooth(ch Channel, target int) int {
	target = clampValue(target)

	diff := target - s.last[ch.Index()]
	if diff > s.maxDelta {
		diff = s.maxDelta
	}
	if diff < -s.maxDelta {
		diff = -s.maxDelta
	}

	v := clampValue(s.last[ch.Index()] + diff)
	s.last[ch.Index()] = v
	return v
}

// Last returns the most recent value emitted for the channel. Used to
// hold a gauge in place when a metric has no reading this tick.
func (s *Smoother) Last(ch Channel) int {
	return s.last[ch.Index()]
}

func clampValue(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
