package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkoskin/gaugectl/internal/config"
)

func resetDriveFlags() {
	drivePortFlag = ""
	driveSampleRateFlag = 0
	driveMaxDeltaFlag = -1
	driveEmitFlag = ""
	driveNoSweepFlag = false
	driveNoParkFlag = false
}

func TestApplyDriveFlags(t *testing.T) {
	t.Run("unset flags leave config untouched", func(t *testing.T) {
		resetDriveFlags()
		t.Cleanup(resetDriveFlags)

		cfg := config.DefaultConfig()
		want := *cfg
		applyDriveFlags(cfg)
		assert.Equal(t, want, *cfg)
	})

	t.Run("set flags override config", func(t *testing.T) {
		resetDriveFlags()
		t.Cleanup(resetDriveFlags)

		drivePortFlag = "/dev/ttyUSB3"
		driveSampleRateFlag = 10
		driveMaxDeltaFlag = 8
		driveEmitFlag = config.EmitOnChange
		driveNoSweepFlag = true
		driveNoParkFlag = true

		cfg := config.DefaultConfig()
		applyDriveFlags(cfg)

		assert.Equal(t, "/dev/ttyUSB3", cfg.Serial.Port)
		assert.Equal(t, 10.0, cfg.SampleRate)
		assert.Equal(t, 8, cfg.MaxDelta)
		assert.Equal(t, config.EmitOnChange, cfg.Emit)
		assert.False(t, cfg.Sweep)
		assert.False(t, cfg.Park.Enabled)
	})

	t.Run("zero max-delta is a deliberate override", func(t *testing.T) {
		resetDriveFlags()
		t.Cleanup(resetDriveFlags)

		driveMaxDeltaFlag = 0

		cfg := config.DefaultConfig()
		applyDriveFlags(cfg)
		assert.Equal(t, 0, cfg.MaxDelta)
	})
}
