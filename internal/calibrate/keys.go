package calibrate

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the calibration screen bindings.
type keyMap struct {
	PrevChannel key.Binding
	NextChannel key.Binding
	Up          key.Binding
	Down        key.Binding
	CoarseUp    key.Binding
	CoarseDown  key.Binding
	Zero        key.Binding
	Mid         key.Binding
	Full        key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	PrevChannel: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous channel"),
	),
	NextChannel: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next channel"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "raise value"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "lower value"),
	),
	CoarseUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "+16"),
	),
	CoarseDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "-16"),
	),
	Zero: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "rest"),
	),
	Mid: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "midpoint"),
	),
	Full: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "full scale"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevChannel, k.NextChannel, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevChannel, k.NextChannel, k.Up, k.Down},
		{k.CoarseUp, k.CoarseDown, k.Zero, k.Mid, k.Full},
		{k.Quit},
	}
}
