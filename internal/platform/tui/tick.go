// Package tui hosts arcade games in the terminal with Bubble Tea. It turns key
// and mouse messages into input events for the loop driver, ticks the driver at
// a fixed rate and draws the game with a HUD.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when the configured rate is not positive.
const DefaultTickRate = 60

// TickMsg is sent to trigger a loop driver tick. ID ties it to the tick loop
// that scheduled it so a stale loop dies out after its game is replaced.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh tick loop ID.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
