// Package tui provides the Bubble Tea integration for the serpent game.
// It handles the terminal UI loop, input mapping, and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameRate drives the render loop. Moves are paced by the engine, not by
// ticks; the loop only exists for animation and event draining.
const frameRate = 30

// TickMsg is sent to trigger a render frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
