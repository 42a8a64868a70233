package tui

import "strings"

type actionSpec struct {
	key   string
	label string
}

var taskActionSpecs = []actionSpec{
	{key: "a", label: "Add task (suffix `!priority` to set a priority)"},
	{key: "e", label: "Edit selected task"},
	{key: "x", label: "Toggle completed (also space)"},
	{key: "p", label: "Toggle pin"},
	{key: "d", label: "Delete selected task"},
	{key: "s", label: "Sort by priority"},
	{key: "/", label: "Filter"},
}

var suggestionActionSpecs = []actionSpec{
	{key: "r", label: "Random task suggestion"},
	{key: "c", label: "Copy suggestion to clipboard"},
	{key: "A", label: "Add suggestion as a task"},
}

var appActionSpecs = []actionSpec{
	{key: "t", label: "Toggle dark mode"},
	{key: "?", label: "Help"},
	{key: "q", label: "Quit"},
}

// footerKeys is the compact one-line key hint.
func footerKeys() string {
	return "a add  e edit  x done  p pin  d del  s sort  r random  c copy  t theme  ? help  q quit"
}

func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	section := func(title string, specs []actionSpec) {
		b.WriteString("## " + title + "\n\n")
		b.WriteString("| Key | Action |\n|---|---|\n")
		for _, s := range specs {
			b.WriteString("| `" + s.key + "` | " + s.label + " |\n")
		}
		b.WriteString("\n")
	}
	section("Tasks", taskActionSpecs)
	section("Suggestions", suggestionActionSpecs)
	section("App", appActionSpecs)
	b.WriteString("While editing: `enter` saves, `esc` cancels.\n")
	return b.String()
}
