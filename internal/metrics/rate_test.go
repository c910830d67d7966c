package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterDelta(t *testing.T) {
	tests := []struct {
		name     string
		prev     uint64
		cur      uint64
		expected uint64
	}{
		{"normal increase", 100, 250, 150},
		{"no change", 100, 100, 0},
		{"counter reset yields zero", 1000, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, counterDelta(tt.prev, tt.cur))
		})
	}
}

func TestNetRater(t *testing.T) {
	var r NetRater
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// First sample only seeds the baseline.
	_, ok := r.Rate(NetReading{RxBytes: 1000, TxBytes: 500, Valid: true}, t0)
	assert.False(t, ok)

	// One second later: +2000 rx, +500 tx => (1500 bytes)*8 = 12000 bps.
	bps, ok := r.Rate(NetReading{RxBytes: 3000, TxBytes: 1000, Valid: true}, t0.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 12000, bps, 0.001)

	// Transmit-heavy tick goes negative.
	bps, ok = r.Rate(NetReading{RxBytes: 3000, TxBytes: 3000, Valid: true}, t0.Add(2*time.Second))
	require.True(t, ok)
	assert.InDelta(t, -16000, bps, 0.001)
}

func TestNetRaterCounterReset(t *testing.T) {
	var r NetRater
	t0 := time.Now()

	r.Rate(NetReading{RxBytes: 1000, TxBytes: 1000, Valid: true}, t0)

	// Both counters regressed (interface replug): rate is zero, not negative.
	bps, ok := r.Rate(NetReading{RxBytes: 10, TxBytes: 10, Valid: true}, t0.Add(time.Second))
	require.True(t, ok)
	assert.Zero(t, bps)
}

func TestNetRaterClockAnomaly(t *testing.T) {
	var r NetRater
	t0 := time.Now()

	r.Rate(NetReading{RxBytes: 0, TxBytes: 0, Valid: true}, t0)

	// Zero and negative elapsed time both yield a zero rate.
	bps, ok := r.Rate(NetReading{RxBytes: 9999, TxBytes: 0, Valid: true}, t0)
	require.True(t, ok)
	assert.Zero(t, bps)

	bps, ok = r.Rate(NetReading{RxBytes: 19999, TxBytes: 0, Valid: true}, t0.Add(-time.Second))
	require.True(t, ok)
	assert.Zero(t, bps)
}

func TestNetRaterInvalidReading(t *testing.T) {
	var r NetRater
	_, ok := r.Rate(NetReading{}, time.Now())
	assert.False(t, ok)
}

func TestDiskRaterPicksBusiestDevice(t *testing.T) {
	var r DiskRater
	t0 := time.Now()

	_, ok := r.Rate(DiskReading{
		Sectors: map[string]uint64{"sda": 1000, "nvme0n1": 5000},
		Valid:   true,
	}, t0)
	assert.False(t, ok, "first tick has no baseline")

	// sda moved 50 sectors, nvme0n1 moved 200: report nvme0n1's rate only.
	rate, ok := r.Rate(DiskReading{
		Sectors: map[string]uint64{"sda": 1050, "nvme0n1": 5200},
		Valid:   true,
	}, t0.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 200, rate, 0.001)
}

func TestDiskRaterNewDeviceSkipped(t *testing.T) {
	var r DiskRater
	t0 := time.Now()

	r.Rate(DiskReading{Sectors: map[string]uint64{"sda": 100}, Valid: true}, t0)

	// sdb appears mid-run with a huge counter; it has no baseline so only
	// sda's delta counts this tick.
	rate, ok := r.Rate(DiskReading{
		Sectors: map[string]uint64{"sda": 150, "sdb": 900000},
		Valid:   true,
	}, t0.Add(time.Second))
	require.True(t, ok)
	assert.InDelta(t, 50, rate, 0.001)

	// Next tick sdb is measurable.
	rate, ok = r.Rate(DiskReading{
		Sectors: map[string]uint64{"sda": 150, "sdb": 900300},
		Valid:   true,
	}, t0.Add(2*time.Second))
	require.True(t, ok)
	assert.InDelta(t, 300, rate, 0.001)
}

func TestDiskRaterVanishedDevicePruned(t *testing.T) {
	var r DiskRater
	t0 := time.Now()

	r.Rate(DiskReading{Sectors: map[string]uint64{"sda": 100, "sdb": 100}, Valid: true}, t0)
	r.Rate(DiskReading{Sectors: map[string]uint64{"sda": 200}, Valid: true}, t0.Add(time.Second))

	// sdb returns with a lower counter; it must be treated as new, not
	// compared against the stale sample.
	rate, ok := r.Rate(DiskReading{
		Sectors: map[string]uint64{"sda": 250, "sdb": 10},
		Valid:   true,
	}, t0.Add(2*time.Second))
	require.True(t, ok)
	assert.InDelta(t, 50, rate, 0.001)
}

func TestDiskRaterCounterReset(t *testing.T) {
	var r DiskRater
	t0 := time.Now()

	r.Rate(DiskReading{Sectors: map[string]uint64{"sda": 1000}, Valid: true}, t0)

	rate, ok := r.Rate(DiskReading{Sectors: map[string]uint64{"sda": 10}, Valid: true}, t0.Add(time.Second))
	require.True(t, ok)
	assert.Zero(t, rate)
}

func TestBusiestDevice(t *testing.T) {
	prev := map[string]uint64{"sda": 100, "sdb": 100, "nvme0n1": 100}
	cur := map[string]uint64{"sda": 150, "sdb": 300, "nvme0n1": 300, "sdc": 999}

	// sdc has no previous sample and is ignored; sdb and nvme0n1 tie and
	// the alphabetically-first wins.
	assert.Equal(t, "nvme0n1", BusiestDevice(prev, cur))
}

func TestWeightedBusy(t *testing.T) {
	tests := []struct {
		name     string
		perCore  []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single core", []float64{40}, 40},
		{"uniform load", []float64{50, 50, 50, 50}, 50},
		{"busiest cores dominate", []float64{100, 0, 0, 0}, 40},
		{"unsorted input", []float64{0, 100, 0, 0}, 40},
		{"more cores than weights", []float64{100, 100, 100, 100, 0, 0, 0, 0}, 100},
		{"two cores", []float64{80, 20}, (80*4 + 20*3) / 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, WeightedBusy(tt.perCore), 0.001)
		})
	}
}
