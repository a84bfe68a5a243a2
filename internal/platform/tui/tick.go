// Package tui provides the Bubble Tea integration for the swing platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step. The game itself never sees wall-clock
// time; the interval between these messages is its only clock.
type TickMsg time.Time

// tickCmd schedules the next simulation tick at the configured rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
