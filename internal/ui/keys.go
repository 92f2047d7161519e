package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func isGlance(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "g":
		return true
	}
	return false
}

func helpText(ambient bool) string {
	if ambient {
		return "a wake  q quit"
	}
	return "space glance  a ambient  r reset  q quit"
}
