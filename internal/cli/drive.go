package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkoskin/gaugectl/internal/config"
	"github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/logger"
	"github.com/mkoskin/gaugectl/internal/loop"
	"github.com/mkoskin/gaugectl/internal/metrics"
	"github.com/mkoskin/gaugectl/internal/serial"
	"github.com/mkoskin/gaugectl/internal/ui"
)

// driveCommand loads config, applies flag overrides, and runs the loop
// until the process is interrupted.
func driveCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	applyDriveFlags(cfg)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if cfg.Serial.Port == "" {
		return errors.New(errors.ErrConfig,
			"No serial port configured",
			"Set serial.port in the config, pass --port, or run 'gaugectl ports' to list devices")
	}

	log := logger.Default()

	source, err := metrics.NewSource(cfg.Disk.DevicePattern, log)
	if err != nil {
		return err
	}

	sink, err := serial.Open(cfg.Serial.Port, cfg.Serial.Baud)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s Driving gauges on %s at %g Hz (Ctrl-C to stop)\n",
		ui.InfoStyle.Render(ui.SymbolBullet), cfg.Serial.Port, cfg.SampleRate)

	return loop.New(cfg, source, sink, log).Run(ctx)
}

// applyDriveFlags overlays explicit drive flags onto the loaded config.
// Zero values mean "not set" for all flags except max-delta, which uses
// -1 as its sentinel since 0 is a legal (frozen-needle) setting.
func applyDriveFlags(cfg *config.Config) {
	if drivePortFlag != "" {
		cfg.Serial.Port = drivePortFlag
	}
	if driveSampleRateFlag > 0 {
		cfg.SampleRate = driveSampleRateFlag
	}
	if driveMaxDeltaFlag >= 0 {
		cfg.MaxDelta = driveMaxDeltaFlag
	}
	if driveEmitFlag != "" {
		cfg.Emit = driveEmitFlag
	}
	if driveNoSweepFlag {
		cfg.Sweep = false
	}
	if driveNoParkFlag {
		cfg.Park.Enabled = false
	}
}
