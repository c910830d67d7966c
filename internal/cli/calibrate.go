package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkoskin/gaugectl/internal/calibrate"
	"github.com/mkoskin/gaugectl/internal/config"
	"github.com/mkoskin/gaugectl/internal/errors"
	"github.com/mkoskin/gaugectl/internal/gauge"
	"github.com/mkoskin/gaugectl/internal/serial"
	"github.com/mkoskin/gaugectl/internal/ui"
)

// calibrateCommand runs the interactive calibration TUI and prints the
// final per-channel values as config-ready YAML hints.
func calibrateCommand() error {
	if !ui.IsInteractive() {
		return errors.New(errors.ErrConfig,
			"Calibration requires an interactive terminal",
			"Run 'gaugectl calibrate' directly in a terminal, not through a pipe")
	}

	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if calibratePortFlag != "" {
		cfg.Serial.Port = calibratePortFlag
	}
	if cfg.Serial.Port == "" {
		return errors.New(errors.ErrConfig,
			"No serial port configured",
			"Set serial.port in the config, pass --port, or run 'gaugectl ports' to list devices")
	}

	sink, err := serial.Open(cfg.Serial.Port, cfg.Serial.Baud)
	if err != nil {
		return err
	}
	defer sink.Close()

	program := tea.NewProgram(calibrate.New(sink), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrSerial,
			"Calibration session failed",
			"Check that the terminal supports full-screen applications")
	}

	model := final.(calibrate.Model)
	if werr := model.Err(); werr != nil {
		return werr
	}

	fmt.Printf("\n%s Final needle positions:\n", ui.SuccessStyle.Render(ui.SymbolSuccess))
	for _, ch := range gauge.Channels {
		fmt.Printf("  %-4s %d\n", ch, model.Values()[ch.Index()])
	}
	fmt.Println(ui.MutedStyle.Render("\nRecord the values where each needle hit its printed scale\nlimits as pwm_min/pwm_max in your config."))
	return nil
}
