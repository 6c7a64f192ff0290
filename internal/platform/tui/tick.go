// Package tui provides the Bubble Tea host for Pang: the terminal loop,
// key mapping with hold emulation, menus, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick chain so a model ignores ticks left over from an earlier game.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loops atomic.Uint64

// newLoop returns a fresh tick chain identifier.
func newLoop() uint64 {
	return loops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// fixed interval. Non-positive rates fall back to 60 ticks per second.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
