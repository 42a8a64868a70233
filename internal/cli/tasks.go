package cli

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
	"taskdeck/internal/tasklist"

	"github.com/spf13/cobra"
)

// taskRows is the printed collection; --format text renders one task per line.
type taskRows []model.Task

func (r taskRows) WriteText(w io.Writer) error {
	if len(r) == 0 {
		_, err := fmt.Fprintln(w, "(no tasks)")
		return err
	}
	for _, t := range r {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		pin := " "
		if t.Pinned {
			pin = "*"
		}
		line := fmt.Sprintf("%s %s %d  %s", check, pin, t.ID, t.Text)
		if t.HasPriority() {
			line += "  !" + t.PriorityLabel()
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "List and change tasks in the current workspace",
	}

	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksAddCmd(app))
	cmd.AddCommand(newTasksDoneCmd(app))
	cmd.AddCommand(newTasksPinCmd(app))
	cmd.AddCommand(newTasksRmCmd(app))
	cmd.AddCommand(newTasksEditCmd(app))
	cmd.AddCommand(newTasksSortCmd(app))

	return cmd
}

// withSession opens the workspace, runs fn against its task list and prints the resulting collection.
func withSession(cmd *cobra.Command, app *App, fn func(l *tasklist.List) error, hints ...string) error {
	ss, err := openSession(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer ss.Close()

	if fn != nil {
		if err := fn(ss.Tasks); err != nil {
			return writeErr(cmd, err)
		}
	}
	if err := persistErr(ss); err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, taskRows(ss.Tasks.Tasks()), hints...)
}

func persistErr(ss *store.Session) error {
	if ss.Persister == nil {
		return nil
	}
	if err := ss.Persister.Err(); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func newTasksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in stored order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, nil)
		},
	}
}

func newTasksAddCmd(app *App) *cobra.Command {
	var priority string
	var pinned bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Append a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Task text is stored as given, empty included.
			text := strings.Join(args, " ")
			return withSession(cmd, app, func(l *tasklist.List) error {
				t := l.Add(text, model.Priority(priority), pinned)
				app.log().Debug("task added", "id", t.ID)
				return nil
			}, "taskdeck tasks list")
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "", "Priority label (compared as text when sorting)")
	cmd.Flags().BoolVar(&pinned, "pinned", false, "Create the task pinned")
	return cmd
}

// newTaskIDCmd builds the single-id mutation commands.
func newTaskIDCmd(app *App, use, short string, fn func(l *tasklist.List, id int64)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return withSession(cmd, app, func(l *tasklist.List) error {
				if _, ok := l.Get(id); !ok {
					app.log().Info("no task with id; nothing changed", "id", id)
				}
				fn(l, id)
				return nil
			})
		},
	}
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return newTaskIDCmd(app, "done", "Toggle a task's completed flag", func(l *tasklist.List, id int64) { l.Toggle(id) })
}

func newTasksPinCmd(app *App) *cobra.Command {
	return newTaskIDCmd(app, "pin", "Toggle a task's pinned flag", func(l *tasklist.List, id int64) { l.TogglePin(id) })
}

func newTasksRmCmd(app *App) *cobra.Command {
	cmd := newTaskIDCmd(app, "rm", "Delete a task", func(l *tasklist.List, id int64) { l.Delete(id) })
	cmd.Aliases = []string{"delete"}
	return cmd
}

func newTasksEditCmd(app *App) *cobra.Command {
	var text string
	var priority string
	var clearPriority bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a task's text and priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if cmd.Flags().Changed("priority") && clearPriority {
				return writeErr(cmd, usageErrorf("--priority and --clear-priority are mutually exclusive"))
			}
			return withSession(cmd, app, func(l *tasklist.List) error {
				cur, ok := l.Get(id)
				if !ok {
					app.log().Info("no task with id; nothing changed", "id", id)
					return nil
				}
				// Unset flags keep the current value.
				newText := cur.Text
				if cmd.Flags().Changed("text") {
					newText = text
				}
				newPriority := cur.Priority
				switch {
				case clearPriority:
					newPriority = nil
				case cmd.Flags().Changed("priority"):
					newPriority = model.Priority(priority)
				}
				l.Edit(id)
				l.SaveEdited(id, newText, newPriority)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "New task text")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority label")
	cmd.Flags().BoolVar(&clearPriority, "clear-priority", false, "Remove the priority")
	return cmd
}

func newTasksSortCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Reorder tasks by priority (absent priorities last, ties keep order)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(l *tasklist.List) error {
				l.SortByPriority()
				return nil
			})
		},
	}
}
