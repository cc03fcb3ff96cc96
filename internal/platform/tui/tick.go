// Package tui provides the Bubble Tea host for the meteors game.
// It maps keys to the button pad, redraws the LED matrix at a fixed frame
// rate and keeps the leaderboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

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

// sessionDoneMsg reports that the Run loop of game number id returned.
type sessionDoneMsg struct {
	id  int
	err error
}
