// Package calibrate provides an interactive TUI for finding per-gauge
// actuation bounds. Arrow keys nudge a raw value on the selected
// channel while frames are written live, so the operator can read the
// needle position straight off the hardware.
package calibrate

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkoskin/gaugectl/internal/gauge"
	"github.com/mkoskin/gaugectl/internal/serial"
)

// coarseStep is the pgup/pgdown increment.
const coarseStep = 16

// Model is the Bubble Tea model for the calibration screen.
type Model struct {
	sink     serial.Sink
	selected int
	values   [gauge.NumChannels]int
	help     help.Model
	writeErr error
	quitting bool
}

// New creates a calibration model writing to sink. All gauges start at
// rest so calibration begins from a known state.
func New(sink serial.Sink) Model {
	return Model{sink: sink, help: help.New()}
}

// Values returns the per-channel values at the time of the call, to be
// printed as suggested pwm bounds after the TUI exits.
func (m Model) Values() [gauge.NumChannels]int {
	return m.values
}

// Err returns the serial error that terminated the session, if any.
func (m Model) Err() error {
	return m.writeErr
}

// Init emits the initial rest frame for the selected channel.
func (m Model) Init() tea.Cmd {
	return m.writeCmd()
}

// Update handles key input and write results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case writeResultMsg:
		if msg.err != nil {
			m.writeErr = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.PrevChannel):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, keys.NextChannel):
		if m.selected < gauge.NumChannels-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, keys.Up):
		return m.set(m.values[m.selected] + 1)
	case key.Matches(msg, keys.Down):
		return m.set(m.values[m.selected] - 1)
	case key.Matches(msg, keys.CoarseUp):
		return m.set(m.values[m.selected] + coarseStep)
	case key.Matches(msg, keys.CoarseDown):
		return m.set(m.values[m.selected] - coarseStep)

	case key.Matches(msg, keys.Zero):
		return m.set(0)
	case key.Matches(msg, keys.Mid):
		return m.set(128)
	case key.Matches(msg, keys.Full):
		return m.set(gauge.MaxValue)
	}
	return m, nil
}

func (m Model) set(v int) (tea.Model, tea.Cmd) {
	if v < 0 {
		v = 0
	}
	if v > gauge.MaxValue {
		v = gauge.MaxValue
	}
	m.values[m.selected] = v
	return m, m.writeCmd()
}

// writeResultMsg carries the outcome of a frame write.
type writeResultMsg struct {
	err error
}

// writeCmd sends the selected channel's current value to the hardware.
func (m Model) writeCmd() tea.Cmd {
	ch := gauge.Channels[m.selected]
	value := m.values[m.selected]
	sink := m.sink
	return func() tea.Msg {
		return writeResultMsg{err: sink.WriteFrame(gauge.EncodeFrame(ch, value))}
	}
}

// Styles for the calibration view.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Padding(0, 1)

	channelStyle = lipgloss.NewStyle().Padding(0, 1)
)

// View renders the four channels with the selected one highlighted.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := titleStyle.Render("gauge calibration") + "\n\n"
	for i, ch := range gauge.Channels {
		cell := fmt.Sprintf("%-4s %3d", ch.String(), m.values[i])
		if i == m.selected {
			s += selectedStyle.Render(cell)
		} else {
			s += channelStyle.Render(cell)
		}
	}
	s += "\n\n" + m.help.View(keys)
	return s
}
