package tui

import "testing"

func TestGlyphs_FromEnv(t *testing.T) {
	t.Setenv("TASKDECK_TUI_GLYPHS", "")
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs by default; got %v", got)
	}

	t.Setenv("TASKDECK_TUI_GLYPHS", "ascii")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if got := glyphCheckbox(true); got != "[x]" {
		t.Fatalf("expected ascii checkbox; got %q", got)
	}

	t.Setenv("TASKDECK_TUI_GLYPHS", "unicode")
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected env to win over config; got %v", got)
	}

	// Unknown values should be ignored (keep current).
	setGlyphs(glyphSetASCII)
	t.Setenv("TASKDECK_TUI_GLYPHS", "bogus")
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
	setGlyphs(glyphSetUnicode)
}

func TestGlyphs_FromConfig(t *testing.T) {
	t.Setenv("TASKDECK_TUI_GLYPHS", "")
	applyGlyphPreference("ascii")
	defer setGlyphs(glyphSetUnicode)
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected config value to apply; got %v", got)
	}
}
