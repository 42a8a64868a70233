package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskDelegate struct {
	st styles

	editingID  int64
	hasEditing bool
}

func newTaskDelegate(st styles, editingID int64, hasEditing bool) taskDelegate {
	return taskDelegate{st: st, editingID: editingID, hasEditing: hasEditing}
}

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}
	contentW := m.Width()
	if contentW < 8 {
		fmt.Fprint(w, "")
		return
	}
	fmt.Fprint(w, d.renderRow(it, index == m.Index(), contentW))
}

func (d taskDelegate) renderRow(it taskItem, selected bool, width int) string {
	t := it.task

	marker := " "
	if d.hasEditing && d.editingID == t.ID {
		marker = ">"
	}
	pin := " "
	if t.Pinned {
		pin = d.st.pin.Render(glyphPin())
	}

	text := t.Text
	if text == "" {
		text = d.st.muted.Render("(empty)")
	} else if t.Completed {
		text = d.st.completed.Render(text)
	} else {
		text = d.st.row.Render(text)
	}
	if t.HasPriority() && t.PriorityLabel() != "" {
		text += " " + d.st.priority.Render("("+t.PriorityLabel()+")")
	}

	line := strings.Join([]string{marker, glyphCheckbox(t.Completed), pin, text}, " ")
	lineW := xansi.StringWidth(line)
	if lineW > width {
		line = xansi.Truncate(line, width, "…")
	} else if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}

	if selected {
		return d.st.selected.Render(xansi.Strip(line))
	}
	return line
}
