package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}

	if m.mode == modeHelp {
		body := renderMarkdown(helpMarkdown(), w-2, m.darkMode)
		return m.fill(strings.Join([]string{m.viewHeader(w), body, m.st.muted.Render("press any key to return")}, "\n"))
	}

	parts := []string{m.viewHeader(w)}
	if s := m.viewSuggestion(w); s != "" {
		parts = append(parts, s)
	}
	if m.tasks.Len() == 0 {
		parts = append(parts, m.st.muted.Render("  No tasks yet. Press a to add one."))
	} else {
		parts = append(parts, m.list.View())
	}

	switch m.mode {
	case modeAdd, modeEdit:
		parts = append(parts, m.st.input.Render(m.input.View()))
	case modeConfirmDelete:
		label := fmtID(m.confirmID)
		if t, ok := m.tasks.Get(m.confirmID); ok {
			label = taskItem{task: t}.Title()
		}
		parts = append(parts, m.st.errorText.Render("Delete \""+xansi.Truncate(label, w-30, "…")+"\"? (y/N)"))
	}

	if m.flash != nil {
		st := m.st.status
		if m.flash.kind == flashError {
			st = m.st.errorText
		}
		parts = append(parts, st.Render(xansi.Truncate(m.flash.text, w, "…")))
	}
	parts = append(parts, m.st.muted.Render(xansi.Truncate(footerKeys(), w, "…")))

	return m.fill(strings.Join(parts, "\n"))
}

func (m appModel) viewHeader(w int) string {
	title := "Task Manager"
	toggle := "Dark Mode [ ]"
	if m.darkMode {
		toggle = "Dark Mode [x]"
	}
	gap := w - 2 - xansi.StringWidth(title) - xansi.StringWidth(toggle)
	if gap < 1 {
		gap = 1
	}
	return m.st.header.Width(w).Render(title + strings.Repeat(" ", gap) + toggle)
}

func (m appModel) viewSuggestion(w int) string {
	if m.suggestion == "" {
		return ""
	}
	line := glyphBullet() + " Random Task Suggestion: " + m.suggestion + "   (c copy, A add)"
	return m.st.suggestion.Width(w).Render(xansi.Truncate(line, w-2, "…"))
}

// fill paints the remaining screen with the palette background.
func (m appModel) fill(s string) string {
	if m.width <= 0 || m.height <= 0 {
		return s
	}
	p := paletteFor(m.darkMode)
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, s,
		lipgloss.WithWhitespaceBackground(p.bg),
		lipgloss.WithWhitespaceForeground(p.fg),
	)
}
