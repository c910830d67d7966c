package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/mkoskin/gaugectl/internal/config"
	"github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/serial"
	"github.com/mkoskin/gaugectl/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Port      string // Pre-specified serial port
	Overwrite bool   // Overwrite existing config without asking
}

// Init creates a new .gaugectl.yaml configuration file in the current
// directory.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	interactive := ui.IsInteractive()

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if !interactive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	port := opts.Port
	if port == "" {
		if !interactive {
			return errors.New(errors.ErrConfig,
				"Serial port is required in non-interactive mode",
				"Provide --port, or run 'gaugectl ports' to list devices")
		}

		if err := promptForPort(&port); err != nil {
			return err
		}
	}

	cfg := config.DefaultConfig()
	cfg.Serial.Port = port

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# gaugectl configuration
# Run 'gaugectl drive' to start driving the gauges.
# Run 'gaugectl calibrate' to find pwm_min/pwm_max for your hardware.

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SuccessStyle.Render(ui.SymbolSuccess), configPath)
	fmt.Println("Next steps:")
	fmt.Println("  gaugectl calibrate  - Find actuation bounds for each gauge")
	fmt.Println("  gaugectl drive      - Start the measurement loop")
	return nil
}

// promptForPort asks the user to pick a serial port, offering detected
// devices when enumeration works and falling back to free-form input.
func promptForPort(port *string) error {
	detected, _ := serial.ListPorts()

	var form *huh.Form
	if len(detected) > 0 {
		options := make([]huh.Option[string], 0, len(detected))
		for _, dev := range detected {
			options = append(options, huh.NewOption(dev, dev))
		}
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Serial port").
					Description("The device the gauge controller is attached to").
					Options(options...).
					Value(port),
			),
		)
	} else {
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Serial port").
					Description("No ports detected; enter the device path manually").
					Placeholder("/dev/ttyUSB0").
					Value(port).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("serial port is required")
						}
						return nil
					}),
			),
		)
	}

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or provide --port")
	}
	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(portFlag string, force bool) error {
	return Init(InitOptions{
		Port:      portFlag,
		Overwrite: force,
	})
}
