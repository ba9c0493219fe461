// Package tui provides the Bubble Tea front end for twenty48.
// It handles the terminal UI loop, input mapping, and turn scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when the next turn is due. Loop identifies the tick loop
// that scheduled it; ticks from a superseded loop are ignored.
type TickMsg struct {
	Time time.Time
	Loop int
}

// tickCmd returns a Bubble Tea command that sends a tick for loop after d.
func tickCmd(loop int, d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return TickMsg{Time: time.Now(), Loop: loop}
		}
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
