// Package tui provides the Bubble Tea integration for the arcade platform:
// the terminal loop, tilt-from-keyboard input synthesis, rendering, menus,
// and the SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
