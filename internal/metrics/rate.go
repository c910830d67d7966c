package metrics

import (
	"sort"
	"time"
)

// counterDelta returns cur-prev, or 0 when the counter regressed.
// A regression means the underlying source reset (device replug, kernel
// counter restart); the needle should read zero for that tick, not a
// wraparound-sized spike.
func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

// elapsedSeconds returns the positive elapsed time between two samples,
// or 0 for clock anomalies.
func elapsedSeconds(prev, cur time.Time) float64 {
	d := cur.Sub(prev).Seconds()
	if d <= 0 {
		return 0
	}
	return d
}

// NetRater derives the signed network rate, in bits per second, from
// consecutive cumulative byte counter readings. Positive means net
// receive, negative means net transmit.
type NetRater struct {
	prev   NetReading
	prevAt time.Time
	seeded bool
}

// Rate consumes this tick's reading and returns the bits-per-second rate
// since the previous one. ok is false when there is no rate to report:
// an invalid reading, the first sample, or a zero elapsed time.
func (r *NetRater) Rate(reading NetReading, at time.Time) (bps float64, ok bool) {
	if !reading.Valid {
		return 0, false
	}
	if !r.seeded {
		r.prev, r.prevAt, r.seeded = reading, at, true
		return 0, false
	}

	elapsed := elapsedSeconds(r.prevAt, at)
	rx := counterDelta(r.prev.RxBytes, reading.RxBytes)
	tx := counterDelta(r.prev.TxBytes, reading.TxBytes)
	r.prev, r.prevAt = reading, at

	if elapsed == 0 {
		return 0, true
	}
	return (float64(rx) - float64(tx)) * 8 / elapsed, true
}

// DiskRater tracks per-device cumulative sector counters and reports the
// rate of the busiest device each tick. The device map is reused across
// ticks; devices that disappear are pruned.
type DiskRater struct {
	prev   map[string]uint64
	prevAt time.Time
	seeded bool
}

// Rate returns the sectors-per-second rate of the device with the
// largest combined read+write delta this tick. Devices seen for the
// first time have no baseline and are skipped until the next tick.
func (r *DiskRater) Rate(reading DiskReading, at time.Time) (sectorsPerSec float64, ok bool) {
	if !reading.Valid {
		return 0, false
	}
	if r.prev == nil {
		r.prev = make(map[string]uint64, len(reading.Sectors))
	}

	var busiest uint64
	measured := false
	for name, cur := range reading.Sectors {
		prev, known := r.prev[name]
		if known {
			measured = true
			if d := counterDelta(prev, cur); d > busiest {
				busiest = d
			}
		}
	}

	elapsed := elapsedSeconds(r.prevAt, at)
	firstTick := !r.seeded

	// Replace the previous sample set wholesale so vanished devices
	// do not linger.
	next := make(map[string]uint64, len(reading.Sectors))
	for name, cur := range reading.Sectors {
		next[name] = cur
	}
	r.prev, r.prevAt, r.seeded = next, at, true

	if firstTick || !measured {
		return 0, false
	}
	if elapsed == 0 {
		return 0, true
	}
	return float64(busiest) / elapsed, true
}

// BusiestDevice returns the name of the device with the largest counter
// delta between prev and cur, for diagnostics. Ties break alphabetically
// so output is stable.
func BusiestDevice(prev, cur map[string]uint64) string {
	names := make([]string, 0, len(cur))
	for name := range cur {
		if _, ok := prev[name]; ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	best := ""
	var bestDelta uint64
	for _, name := range names {
		if d := counterDelta(prev[name], cur[name]); best == "" || d > bestDelta {
			best, bestDelta = name, d
		}
	}
	return best
}

// WeightedBusy folds per-core busy percentages into a single gauge
// percentage biased toward the busiest cores, so short single-core
// spikes still move the needle. Weights 4:3:2:1 over the up-to-4
// busiest cores.
func WeightedBusy(perCore []float64) float64 {
	if len(perCore) == 0 {
		return 0
	}
	sorted := make([]float64, len(perCore))
	copy(sorted, perCore)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	weights := []float64{4, 3, 2, 1}
	n := len(sorted)
	if n > len(weights) {
		n = len(weights)
	}

	var sum, wsum float64
	for i := 0; i < n; i++ {
		sum += sorted[i] * weights[i]
		wsum += weights[i]
	}
	pct := sum / wsum
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
