// Package cli implements the gaugectl command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to the internal packages for the actual work:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Command implementations (drive.go, ports.go, calibrate.go, init.go)
//   - Domain logic (internal/loop, internal/metrics, internal/gauge)
//
// # Command Structure
//
// The root command is "gaugectl" with subcommands for different
// operations:
//
//	gaugectl drive      - Run the measurement loop against the hardware
//	gaugectl calibrate  - Interactively find gauge actuation bounds
//	gaugectl ports      - List serial devices
//	gaugectl init       - Create a .gaugectl.yaml config
//	gaugectl version    - Print version information
//
// # Flag Handling
//
// The global --config flag is defined on the root command and available
// to all subcommands. Command-specific flags like --port and
// --samplerate are defined on individual commands and overlay the
// loaded config before validation, so a flag always wins over the file.
package cli
