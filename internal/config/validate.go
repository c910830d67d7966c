package config

import (
	"fmt"

	"github.com/mkoskin/gaugectl/internal/errors"
)

// Limits for loop settings. The sample rate ceiling keeps tick periods
// comfortably above the serial transmission time of four frames.
const (
	MinSampleRate = 0.1
	MaxSampleRate = 50.0
)

// Validate checks config invariants. Scaling code clamps at use time
// regardless; validation exists to reject configs that cannot mean what
// the operator intended.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if cfg.SampleRate < MinSampleRate || cfg.SampleRate > MaxSampleRate {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sample rate %.2f Hz out of range", cfg.SampleRate),
			fmt.Sprintf("Use a value between %.1f and %.1f Hz", MinSampleRate, MaxSampleRate))
	}

	if cfg.MaxDelta < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("max_delta %d is negative", cfg.MaxDelta),
			"Use 0 to pin the needles, 255 to disable smoothing, or something in between")
	}

	if cfg.Emit != EmitEveryTick && cfg.Emit != EmitOnChange {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown emit policy %q", cfg.Emit),
			fmt.Sprintf("Use %q or %q", EmitEveryTick, EmitOnChange))
	}

	if cfg.Serial.Baud <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid baud rate %d", cfg.Serial.Baud),
			"The stock gauge controller runs at 115200")
	}

	if err := validateRange("cpu", cfg.CPU.PWMMin, cfg.CPU.PWMMax); err != nil {
		return err
	}
	if err := validateRange("memory", cfg.Memory.PWMMin, cfg.Memory.PWMMax); err != nil {
		return err
	}
	if err := validateRange("disk", cfg.Disk.PWMMin, cfg.Disk.PWMMax); err != nil {
		return err
	}
	if err := validateRange("network", cfg.Network.PWMMin, cfg.Network.PWMMax); err != nil {
		return err
	}

	if cfg.Network.PWMZero < cfg.Network.PWMMin || cfg.Network.PWMZero > cfg.Network.PWMMax {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("network pwm_zero %d outside [pwm_min, pwm_max]", cfg.Network.PWMZero),
			"The zero-point must sit between the network channel bounds")
	}

	if cfg.Network.FullScaleMbps <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("network full_scale_mbps %.2f must be positive", cfg.Network.FullScaleMbps),
			"Set it to the link speed you want to deflect the needle fully")
	}

	if cfg.Disk.FullScaleSectors <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("disk full_scale_sectors %.2f must be positive", cfg.Disk.FullScaleSectors),
			"102400 sectors/s (50 MB/s) is a reasonable default")
	}

	if cfg.Park.Value < 0 || cfg.Park.Value > 255 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("park value %d outside [0, 255]", cfg.Park.Value),
			"Park values are raw actuation bytes")
	}

	return nil
}

func validateRange(channel string, min, max int) error {
	if min < 0 || max > 255 || min > max {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s pwm range [%d, %d] is invalid", channel, min, max),
			"Bounds must satisfy 0 <= pwm_min <= pwm_max <= 255")
	}
	return nil
}
