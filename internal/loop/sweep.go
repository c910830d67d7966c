package loop

import (
	"context"
	"time"

	"github.com/mkoskin/gaugectl/internal/gauge"
	"github.com/mkoskin/gaugectl/internal/serial"
)

// SweepStepDelay is the pause between sweep steps. At 3ms per step the
// full pattern takes about 2.3 seconds.
const SweepStepDelay = 3 * time.Millisecond

// Sweep exercises the full travel of all four gauges: up to full scale,
// down to midpoint, back to full, then down to rest. Confirms the
// needles move freely before real data starts driving them.
func Sweep(ctx context.Context, sink serial.Sink, stepDelay time.Duration) error {
	for _, v := range sweepValues() {
		if ctx.Err() != nil {
			return nil
		}
		for _, ch := range gauge.Channels {
			if err := sink.WriteFrame(gauge.EncodeFrame(ch, v)); err != nil {
				return err
			}
		}
		if stepDelay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(stepDelay):
			}
		}
	}
	return nil
}

// sweepValues generates the sweep pattern 0..255, 255..128, 128..255, 255..0.
func sweepValues() []int {
	var vals []int
	for v := 0; v <= 255; v++ {
		vals = append(vals, v)
	}
	for v := 255; v >= 128; v-- {
		vals = append(vals, v)
	}
	for v := 128; v <= 255; v++ {
		vals = append(vals, v)
	}
	for v := 255; v >= 0; v-- {
		vals = append(vals, v)
	}
	return vals
}
