package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives the interactive animation. gen ties it to the loop that
// scheduled it so a stale loop dies out after an ambient round trip.
type frameMsg struct {
	at  time.Time
	gen int
}

// clockMsg refreshes the clock while ambient.
type clockMsg struct {
	at  time.Time
	gen int
}

const ambientRefresh = time.Second

func frameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{at: t, gen: gen}
	})
}

func clockCmd(gen int) tea.Cmd {
	return tea.Tick(ambientRefresh, func(t time.Time) tea.Msg {
		return clockMsg{at: t, gen: gen}
	})
}
