package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal. Interactive-only
// surfaces (calibration TUI, init prompts) refuse to run when piped.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ConfigureColors drops to plain output when stdout is not a terminal,
// so piping 'gaugectl ports' into a script yields clean text.
func ConfigureColors() {
	if !IsInteractive() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
