// Package tui hosts the games in a terminal with Bubble Tea, either locally
// or per SSH session. It owns the tick loop, the keyboard and persistence;
// the games only see elapsed time and input frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a host tick.
type TickMsg time.Time

// tickInterval is the wall time between ticks at rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
