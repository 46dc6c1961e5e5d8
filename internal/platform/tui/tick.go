// Package tui provides the Bubble Tea integration for ShufflePop.
// It handles the terminal UI loop, input mapping, menus and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick chain so a model ignores ticks left over from an earlier game.
type TickMsg struct {
	Loop int64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// tick interval at the specified rate.
func tickCmd(tickRate int, loop int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Loop: loop, Time: t}
	})
}
