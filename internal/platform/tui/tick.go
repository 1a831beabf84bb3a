// Package tui provides the Bubble Tea integration for the sweeper platform.
// It handles the terminal UI loop, input mapping, and game orchestration,
// locally and over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the timer display of the game model that started it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID returns an id for a new tick chain.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the given rate.
func tickCmd(id int64, perSecond int) tea.Cmd {
	if perSecond <= 0 {
		perSecond = 1
	}
	return tea.Tick(time.Second/time.Duration(perSecond), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
