// Package metrics samples host performance counters and derives the
// per-second rates that feed the gauge pipeline.
package metrics

import "time"

// Snapshot is one tick's worth of raw readings. Each reading carries its
// own Valid flag: a metric that cannot be sampled on this platform (or
// failed this tick) is simply absent, and the affected gauge holds its
// last position.
type Snapshot struct {
	At   time.Time
	CPU  CPUReading
	Mem  MemReading
	Net  NetReading
	Disk DiskReading
}

// CPUReading holds instantaneous per-core busy percentages in [0,100].
type CPUReading struct {
	PerCorePercent []float64
	Valid          bool
}

// MemReading holds the used-memory percentage in [0,100].
type MemReading struct {
	UsedPercent float64
	Valid       bool
}

// NetReading holds cumulative byte counters summed over all interfaces.
type NetReading struct {
	RxBytes uint64
	TxBytes uint64
	Valid   bool
}

// DiskReading holds cumulative read+write sector counts per block device,
// filtered to the monitored device name patterns.
type DiskReading struct {
	Sectors map[string]uint64
	Valid   bool
}
