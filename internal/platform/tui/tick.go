// Package tui provides the Bubble Tea front end for the pathfinder: splash,
// grid editor and replay, layout menu, run history and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// minTick keeps zero or tiny replay intervals from spinning the event loop.
const minTick = time.Millisecond

// TickMsg drives replay playback. Gen identifies the replay that scheduled
// it; ticks from a cancelled replay are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// splashDoneMsg hides the welcome message.
type splashDoneMsg struct{}

// tickCmd returns a command that sends one TickMsg after interval.
func tickCmd(gen int, interval time.Duration) tea.Cmd {
	if interval < minTick {
		interval = minTick
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// splashCmd hides the splash after d.
func splashCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}
