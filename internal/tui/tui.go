package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI on an open session and blocks until quit.
func Run(opts Options) error {
	applyColorProfilePreference()
	glyphsCfg := ""
	if opts.Config != nil && opts.Config.TUI != nil {
		glyphsCfg = opts.Config.TUI.Glyphs
	}
	applyGlyphPreference(glyphsCfg)

	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
