package config

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Emission policies for the drive loop.
const (
	// EmitEveryTick writes a frame for every channel on every tick.
	EmitEveryTick = "every-tick"
	// EmitOnChange writes a frame only when the smoothed value moved.
	EmitOnChange = "on-change"
)

// Config represents the complete gaugectl configuration file.
// All values are immutable for the process lifetime once loaded.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	Serial SerialConfig `yaml:"serial" mapstructure:"serial"`

	// SampleRate is the loop tick frequency in Hz.
	SampleRate float64 `yaml:"samplerate" mapstructure:"samplerate"`

	// MaxDelta limits how far any needle may move per tick.
	MaxDelta int `yaml:"max_delta" mapstructure:"max_delta"`

	// Emit selects the frame emission policy: every-tick or on-change.
	Emit string `yaml:"emit" mapstructure:"emit"`

	// Sweep runs the full-travel gauge sweep on startup.
	Sweep bool `yaml:"sweep" mapstructure:"sweep"`

	Park ParkConfig `yaml:"park" mapstructure:"park"`

	CPU     ChannelConfig `yaml:"cpu" mapstructure:"cpu"`
	Network NetworkConfig `yaml:"network" mapstructure:"network"`
	Disk    DiskConfig    `yaml:"disk" mapstructure:"disk"`
	Memory  ChannelConfig `yaml:"memory" mapstructure:"memory"`
}

// SerialConfig identifies the serial link to the gauge controller.
type SerialConfig struct {
	// Port is the device path, e.g. /dev/ttyUSB0 or COM3.
	Port string `yaml:"port" mapstructure:"port"`

	// Baud is the line speed. The stock controller firmware runs at 115200.
	Baud int `yaml:"baud" mapstructure:"baud"`
}

// ChannelConfig holds the actuation bounds for a unidirectional channel.
type ChannelConfig struct {
	PWMMin int `yaml:"pwm_min" mapstructure:"pwm_min"`
	PWMMax int `yaml:"pwm_max" mapstructure:"pwm_max"`
}

// NetworkConfig holds the bounds and scaling for the bidirectional
// network channel.
type NetworkConfig struct {
	PWMMin  int `yaml:"pwm_min" mapstructure:"pwm_min"`
	PWMZero int `yaml:"pwm_zero" mapstructure:"pwm_zero"`
	PWMMax  int `yaml:"pwm_max" mapstructure:"pwm_max"`

	// FullScaleMbps is the net rate magnitude for full needle deflection.
	FullScaleMbps float64 `yaml:"full_scale_mbps" mapstructure:"full_scale_mbps"`

	// Absolute scales |rx-tx| from PWMMin to PWMMax instead of using the
	// signed zero-point mapping.
	Absolute bool `yaml:"absolute" mapstructure:"absolute"`
}

// DiskConfig holds the bounds and scaling for the disk channel.
type DiskConfig struct {
	PWMMin int `yaml:"pwm_min" mapstructure:"pwm_min"`
	PWMMax int `yaml:"pwm_max" mapstructure:"pwm_max"`

	// FullScaleSectors is the sectors/second rate for full deflection.
	FullScaleSectors float64 `yaml:"full_scale_sectors" mapstructure:"full_scale_sectors"`

	// DevicePattern restricts which block devices are monitored.
	// Empty selects the built-in SCSI/SATA + NVMe pattern.
	DevicePattern string `yaml:"device_pattern" mapstructure:"device_pattern"`
}

// ParkConfig controls needle parking on clean shutdown.
type ParkConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	Value   int  `yaml:"value" mapstructure:"value"`
}

// DefaultConfig returns a Config with sensible defaults matching the
// stock gauge hardware.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Serial: SerialConfig{
			Baud: 115200,
		},
		SampleRate: 5.0,
		MaxDelta:   32,
		Emit:       EmitEveryTick,
		Sweep:      true,
		Park: ParkConfig{
			Enabled: true,
			Value:   0,
		},
		CPU:    ChannelConfig{PWMMin: 0, PWMMax: 255},
		Memory: ChannelConfig{PWMMin: 0, PWMMax: 255},
		Network: NetworkConfig{
			PWMMin:        0,
			PWMZero:       128,
			PWMMax:        255,
			FullScaleMbps: 100,
		},
		Disk: DiskConfig{
			PWMMin:           0,
			PWMMax:           255,
			FullScaleSectors: 102400,
		},
	}
}
