// Package tui runs the brick breaker in a terminal with Bubble Tea.
// Frames drive the game's virtual clock; the arena canvas is scaled into a
// character screen each frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// frameInterval returns the time between frames at the given rate.
func frameInterval(frameRate int) time.Duration {
	if frameRate <= 0 {
		frameRate = 60
	}
	return time.Second / time.Duration(frameRate)
}

// tickCmd returns a Bubble Tea command that sends the next frame message.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
