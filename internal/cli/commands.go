package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkoskin/gaugectl/internal/config"
	"github.com/mkoskin/gaugectl/internal/errors"
)

// Command-specific flags
var (
	drivePortFlag       string
	driveSampleRateFlag float64
	driveMaxDeltaFlag   int
	driveEmitFlag       string
	driveNoSweepFlag    bool
	driveNoParkFlag     bool
	calibratePortFlag   string
	initPortFlag        string
	initForce           bool
)

// driveCmd runs the measurement loop against the gauge hardware
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Sample host metrics and drive the gauges",
	Long: `Start the continuous measurement loop: sample CPU, network, disk,
and memory once per tick, and stream one actuation frame per channel
to the gauge controller.

The loop runs until interrupted. A serial write failure stops it
immediately; metric read failures only freeze the affected needle.

Examples:
  gaugectl drive
  gaugectl drive --port /dev/ttyUSB0
  gaugectl drive --samplerate 10 --max-delta 16
  gaugectl drive --emit on-change --no-sweep`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return driveCommand()
	},
}

// portsCmd lists serial ports
var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available serial ports",
	Long: `Enumerate serial devices present on this system.

Use the printed device path as --port or as serial.port in the config.

Examples:
  gaugectl ports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return portsCommand()
	},
}

// calibrateCmd opens the interactive calibration TUI
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Interactively find gauge actuation bounds",
	Long: `Open a full-screen calibration session against the gauge hardware.

Use arrow keys to select a channel and nudge its raw actuation value
while watching the physical needle. Note the values where each needle
reaches its printed scale limits and record them as pwm_min/pwm_max.

Keyboard shortcuts:
  ←/→ h/l     Select channel
  ↑/↓ k/j     Adjust value by 1
  pgup/pgdn   Adjust value by 16
  0 / m / f   Jump to rest / midpoint / full scale
  q / Esc     Quit

Examples:
  gaugectl calibrate
  gaugectl calibrate --port /dev/ttyUSB0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return calibrateCommand()
	},
}

// initCmd creates a new config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a gaugectl config file",
	Long: `Initialize a new gaugectl configuration file.

Creates ` + config.ConfigFileName + ` in the current directory with documented
defaults, prompting for the serial port interactively.

Examples:
  gaugectl init
  gaugectl init --port /dev/ttyUSB0
  gaugectl init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initPortFlag, initForce)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for gaugectl.

Examples:
  # Bash
  gaugectl completion bash > /etc/bash_completion.d/gaugectl

  # Zsh
  gaugectl completion zsh > "${fpath[1]}/_gaugectl"

  # Fish
  gaugectl completion fish > ~/.config/fish/completions/gaugectl.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// drive command flags
	driveCmd.Flags().StringVar(&drivePortFlag, "port", "", "serial port device path")
	driveCmd.Flags().Float64Var(&driveSampleRateFlag, "samplerate", 0, "loop tick frequency in Hz")
	driveCmd.Flags().IntVar(&driveMaxDeltaFlag, "max-delta", -1, "maximum needle movement per tick")
	driveCmd.Flags().StringVar(&driveEmitFlag, "emit", "", "frame emission policy: every-tick or on-change")
	driveCmd.Flags().BoolVar(&driveNoSweepFlag, "no-sweep", false, "skip the startup gauge sweep")
	driveCmd.Flags().BoolVar(&driveNoParkFlag, "no-park", false, "leave needles in place on shutdown")

	// calibrate command flags
	calibrateCmd.Flags().StringVar(&calibratePortFlag, "port", "", "serial port device path")

	// init command flags
	initCmd.Flags().StringVar(&initPortFlag, "port", "", "pre-specify the serial port")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(driveCmd)
	rootCmd.AddCommand(portsCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
