package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// palette is one complete color scheme. Dark mode swaps the whole palette
// rather than relying on lipgloss.AdaptiveColor, because the user toggles it
// explicitly and it must not depend on what the terminal reports.
type palette struct {
	name string

	bg         lipgloss.Color
	fg         lipgloss.Color
	muted      lipgloss.Color
	headerBg   lipgloss.Color
	headerFg   lipgloss.Color
	selectedBg lipgloss.Color
	selectedFg lipgloss.Color
	accent     lipgloss.Color
	priority   lipgloss.Color
	pin        lipgloss.Color
	suggestBg  lipgloss.Color
	suggestFg  lipgloss.Color
	errorFg    lipgloss.Color
}

var (
	lightPalette = palette{
		name:       "light",
		bg:         lipgloss.Color("255"),
		fg:         lipgloss.Color("235"),
		muted:      lipgloss.Color("243"),
		headerBg:   lipgloss.Color("208"), // orange nav bar
		headerFg:   lipgloss.Color("232"),
		selectedBg: lipgloss.Color("#e9e9e9"),
		selectedFg: lipgloss.Color("235"),
		accent:     lipgloss.Color("27"),
		priority:   lipgloss.Color("130"),
		pin:        lipgloss.Color("166"),
		suggestBg:  lipgloss.Color("223"),
		suggestFg:  lipgloss.Color("235"),
		errorFg:    lipgloss.Color("160"),
	}
	darkPalette = palette{
		name:       "dark",
		bg:         lipgloss.Color("236"),
		fg:         lipgloss.Color("252"),
		muted:      lipgloss.Color("245"),
		headerBg:   lipgloss.Color("234"),
		headerFg:   lipgloss.Color("255"),
		selectedBg: lipgloss.Color("#262626"),
		selectedFg: lipgloss.Color("255"),
		accent:     lipgloss.Color("62"),
		priority:   lipgloss.Color("179"),
		pin:        lipgloss.Color("215"),
		suggestBg:  lipgloss.Color("238"),
		suggestFg:  lipgloss.Color("255"),
		errorFg:    lipgloss.Color("203"),
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

type styles struct {
	header     lipgloss.Style
	row        lipgloss.Style
	selected   lipgloss.Style
	completed  lipgloss.Style
	muted      lipgloss.Style
	priority   lipgloss.Style
	pin        lipgloss.Style
	suggestion lipgloss.Style
	input      lipgloss.Style
	status     lipgloss.Style
	errorText  lipgloss.Style
}

func newStyles(p palette) styles {
	base := lipgloss.NewStyle().Foreground(p.fg)
	muted := lipgloss.NewStyle().Foreground(p.muted)
	return styles{
		header:     lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(p.headerBg).Foreground(p.headerFg),
		row:        base,
		selected:   lipgloss.NewStyle().Bold(true).Background(p.selectedBg).Foreground(p.selectedFg),
		completed:  muted.Strikethrough(true),
		muted:      muted,
		priority:   lipgloss.NewStyle().Foreground(p.priority),
		pin:        lipgloss.NewStyle().Foreground(p.pin).Bold(true),
		suggestion: lipgloss.NewStyle().Padding(0, 1).Background(p.suggestBg).Foreground(p.suggestFg),
		input:      lipgloss.NewStyle().Foreground(p.accent),
		status:     muted.Italic(true),
		errorText:  lipgloss.NewStyle().Foreground(p.errorFg),
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which can accidentally
// disable colors in a TUI. Here we only honor NO_COLOR and otherwise follow the
// terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") && (profile == termenv.Ascii || profile == termenv.ANSI) {
		profile = termenv.ANSI256
	}

	lipgloss.SetColorProfile(profile)
}

// detectDarkBackground guesses the initial dark mode when nothing is saved.
//
// Priority:
// 1) TASKDECK_TUI_THEME=light|dark
// 2) COLORFGBG heuristic ("fg;bg")
// 3) terminal background query via lipgloss
func detectDarkBackground() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TASKDECK_TUI_THEME"))) {
	case "light":
		return false
	case "dark":
		return true
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			return bg < 7
		}
	}

	return lipgloss.HasDarkBackground()
}
