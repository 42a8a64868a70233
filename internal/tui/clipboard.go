package tui

import (
	"taskdeck/internal/suggest"

	tea "github.com/charmbracelet/bubbletea"
)

type clipboardResultMsg struct {
	text string
	err  error
}

// copyCmd copies off the update loop; the result only ever reaches the status line.
func copyCmd(c suggest.Copier, text string) tea.Cmd {
	if c == nil || text == "" {
		return nil
	}
	return func() tea.Msg {
		return clipboardResultMsg{text: text, err: c.Copy(text)}
	}
}
