// Package loop runs the measurement-to-actuation control loop: one tick
// samples every metric, derives rates, scales and smooths them, and
// writes one frame per channel to the serial sink.
package loop

import (
	"context"
	"time"

	"github.com/mkoskin/gaugectl/internal/config"
	"github.com/mkoskin/gaugectl/internal/gauge"
	"github.com/mkoskin/gaugectl/internal/logger"
	"github.com/mkoskin/gaugectl/internal/metrics"
	"github.com/mkoskin/gaugectl/internal/serial"
)

// MetricSource produces one snapshot per tick.
type MetricSource interface {
	Snapshot() metrics.Snapshot
}

// Driver owns all per-channel state: the smoother's last values and the
// raters' previous samples. Everything runs on a single goroutine; no
// state crosses threads.
type Driver struct {
	source MetricSource
	sink   serial.Sink
	log    logger.Logger

	smoother  *gauge.Smoother
	netRater  metrics.NetRater
	diskRater metrics.DiskRater

	cpuRange  gauge.Range
	memRange  gauge.Range
	netScale  gauge.NetScale
	diskScale gauge.DiskScale

	period       time.Duration
	sweep        bool
	park         config.ParkConfig
	emitOnChange bool
	lastSent     [gauge.NumChannels]int
}

// New builds a driver from an immutable config. The sink is owned by
// the caller and is not closed by the driver.
func New(cfg *config.Config, source MetricSource, sink serial.Sink, log logger.Logger) *Driver {
	if log == nil {
		log = logger.Noop()
	}

	d := &Driver{
		source:   source,
		sink:     sink,
		log:      log,
		smoother: gauge.NewSmoother(cfg.MaxDelta, 0),
		cpuRange: gauge.Range{Min: float64(cfg.CPU.PWMMin), Max: float64(cfg.CPU.PWMMax)},
		memRange: gauge.Range{Min: float64(cfg.Memory.PWMMin), Max: float64(cfg.Memory.PWMMax)},
		netScale: gauge.NetScale{
			Min:       float64(cfg.Network.PWMMin),
			Zero:      float64(cfg.Network.PWMZero),
			Max:       float64(cfg.Network.PWMMax),
			FullScale: cfg.Network.FullScaleMbps * 1e6, // Mbps -> bits/s
			Absolute:  cfg.Network.Absolute,
		},
		diskScale: gauge.DiskScale{
			Range:     gauge.Range{Min: float64(cfg.Disk.PWMMin), Max: float64(cfg.Disk.PWMMax)},
			FullScale: cfg.Disk.FullScaleSectors,
		},
		period:       time.Duration(float64(time.Second) / cfg.SampleRate),
		sweep:        cfg.Sweep,
		park:         cfg.Park,
		emitOnChange: cfg.Emit == config.EmitOnChange,
	}
	for i := range d.lastSent {
		d.lastSent[i] = -1 // force the first emission on every channel
	}
	return d
}

// Run drives the loop until ctx is canceled or a serial write fails.
// Cancellation is checked before each tick's writes; a clean shutdown
// optionally parks the needles and returns nil.
func (d *Driver) Run(ctx context.Context) error {
	if d.sweep {
		if err := Sweep(ctx, d.sink, SweepStepDelay); err != nil {
			return err
		}
	}

	d.log.Info("starting measure loop, period %s", d.period)

	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return d.shutdown()
		case <-ticker.C:
			if ctx.Err() != nil {
				return d.shutdown()
			}
			if err := d.Tick(d.source.Snapshot()); err != nil {
				return err
			}
		}
	}
}

// Tick computes and emits all four channels, in fixed wire order, from
// one snapshot. A serial write error is fatal and returned as-is.
func (d *Driver) Tick(snap metrics.Snapshot) error {
	for _, ch := range gauge.Channels {
		value, ok := d.target(ch, snap)
		if ok {
			value = d.smoother.Smooth(ch, value)
		} else {
			// No reading this tick: hold the needle where it is.
			value = d.smoother.Last(ch)
		}

		if err := d.emit(ch, value); err != nil {
			return err
		}
	}
	return nil
}

// target computes the scaled actuation target for one channel.
// ok is false when the metric has no reading this tick.
func (d *Driver) target(ch gauge.Channel, snap metrics.Snapshot) (int, bool) {
	switch ch {
	case gauge.CPU:
		if !snap.CPU.Valid {
			return 0, false
		}
		pct := metrics.WeightedBusy(snap.CPU.PerCorePercent)
		d.log.Debug("cpu busy %.1f%%", pct)
		return gauge.ScalePercent(pct, d.cpuRange), true

	case gauge.Network:
		rate, ok := d.netRater.Rate(snap.Net, snap.At)
		if !ok {
			return 0, false
		}
		d.log.Debug("net rate %.0f kbps", rate/1000)
		return d.netScale.Scale(rate), true

	case gauge.Disk:
		rate, ok := d.diskRater.Rate(snap.Disk, snap.At)
		if !ok {
			return 0, false
		}
		d.log.Debug("disk rate %.0f sectors/s", rate)
		return d.diskScale.Scale(rate), true

	case gauge.Memory:
		if !snap.Mem.Valid {
			return 0, false
		}
		d.log.Debug("mem used %.1f%%", snap.Mem.UsedPercent)
		return gauge.ScalePercent(snap.Mem.UsedPercent, d.memRange), true
	}
	return 0, false
}

// emit writes the frame for a channel, honoring the emission policy.
func (d *Driver) emit(ch gauge.Channel, value int) error {
	if d.emitOnChange && d.lastSent[ch.Index()] == value {
		return nil
	}
	if err := d.sink.WriteFrame(gauge.EncodeFrame(ch, value)); err != nil {
		return err
	}
	d.lastSent[ch.Index()] = value
	return nil
}

// shutdown optionally parks the needles. Park frames are raw writes:
// smoothing the park motion would keep the serial link busy after the
// operator asked to stop.
func (d *Driver) shutdown() error {
	if !d.park.Enabled {
		return nil
	}
	d.log.Info("parking needles at %d", d.park.Value)
	for _, ch := range gauge.Channels {
		if err := d.sink.WriteFrame(gauge.EncodeFrame(ch, d.park.Value)); err != nil {
			// The link may already be gone at shutdown; parking is
			// best-effort.
			d.log.Warn("park write failed: %v", err)
			return nil
		}
	}
	return nil
}
