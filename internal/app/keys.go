package app

import tea "github.com/charmbracelet/bubbletea"

// keyAction maps a key event onto the abstract action set. Arrows and
// wasd both move, enter and space select, and q or ctrl+c leave the
// game from any screen.
func keyAction(msg tea.KeyMsg) action {
	switch msg.String() {
	case "enter", " ":
		return actionSelect
	case "up", "w":
		return actionUp
	case "down", "s":
		return actionDown
	case "left", "a":
		return actionLeft
	case "right", "d":
		return actionRight
	case "q", "esc", "ctrl+c":
		return actionExit
	default:
		return actionNone
	}
}
