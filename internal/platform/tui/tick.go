// Package tui provides the Bubble Tea integration for Sokoban.
// It handles the terminal UI loop, input mapping, level picking and the
// progress board.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 3 * time.Second

// statusExpiredMsg clears the status line set with the matching sequence number.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd returns a command that expires status seq after d.
func expireStatusCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
