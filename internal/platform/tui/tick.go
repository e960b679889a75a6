// Package tui provides the Bubble Tea integration: the terminal game loop
// with mouse input, the scoreboard, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruitslice/internal/core"
)

// DefaultTickRate is used when the runtime config leaves the rate unset.
const DefaultTickRate = core.DefaultTickRate

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := core.RuntimeConfig{TickRate: tickRate}.FrameDuration()
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
