package tui

import (
	"strings"

	"taskdeck/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string {
	return strings.TrimSpace(i.task.Text + " " + i.task.PriorityLabel())
}

// Title is the plain label: text plus "(priority)" when set.
func (i taskItem) Title() string {
	if i.task.HasPriority() && i.task.PriorityLabel() != "" {
		return i.task.Text + " (" + i.task.PriorityLabel() + ")"
	}
	return i.task.Text
}

func taskListItems(tasks []model.Task) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	return items
}

func newList(title string, items []list.Item, d list.ItemDelegate) list.Model {
	l := list.New(items, d, 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.DisableQuitKeybindings()
	return l
}
