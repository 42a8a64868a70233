package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestDetectDarkBackground_EnvPrecedence(t *testing.T) {
	t.Setenv("TASKDECK_TUI_THEME", "dark")
	t.Setenv("COLORFGBG", "0;15")
	if !detectDarkBackground() {
		t.Fatalf("expected explicit theme to win over COLORFGBG")
	}

	t.Setenv("TASKDECK_TUI_THEME", "light")
	t.Setenv("COLORFGBG", "15;0")
	if detectDarkBackground() {
		t.Fatalf("expected light theme")
	}

	t.Setenv("TASKDECK_TUI_THEME", "")
	t.Setenv("COLORFGBG", "15;0")
	if !detectDarkBackground() {
		t.Fatalf("expected COLORFGBG bg=0 to be dark")
	}
	t.Setenv("COLORFGBG", "0;default;15")
	if detectDarkBackground() {
		t.Fatalf("expected COLORFGBG bg=15 to be light")
	}
}

func TestPaletteFor(t *testing.T) {
	if paletteFor(true).name != "dark" || paletteFor(false).name != "light" {
		t.Fatalf("unexpected palettes")
	}
	if paletteFor(true).bg == paletteFor(false).bg {
		t.Fatalf("expected dark and light backgrounds to differ")
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := renderMarkdown("   ", 40, false); got != "" {
		t.Fatalf("expected empty output for blank input; got %q", got)
	}
	for _, dark := range []bool{false, true} {
		out := xansi.Strip(renderMarkdown("# Keys\n\nPress **a** to add.", 40, dark))
		if !strings.Contains(out, "Keys") || !strings.Contains(out, "to add") {
			t.Fatalf("expected rendered text (dark=%v); got %q", dark, out)
		}
	}
	if markdownStyle(true) != "dark" || markdownStyle(false) != "light" {
		t.Fatalf("unexpected markdown styles")
	}
}
