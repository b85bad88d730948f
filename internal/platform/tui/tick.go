// Package tui provides the Bubble Tea integration for Willy the Worm.
// It handles the terminal UI loop, input mapping, the level editor and
// the SSH session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// ClockMsg is sent when a game clock period elapses.
// Gen identifies the schedule it belongs to; stale ones are dropped.
type ClockMsg struct {
	Gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// clockCmd schedules one clock period for generation gen.
func clockCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return ClockMsg{Gen: gen}
	})
}
