// Package tui hosts the snake game in a Bubble Tea program, locally or per SSH session.
// It owns the poll loop, key bindings and frame layout.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent on every poll of the game loop.
type TickMsg time.Time

// tickCmd schedules the next poll at the given rate. Polls land on wall-clock
// multiples of the period, so time spent in Update does not push later polls back.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Every(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
