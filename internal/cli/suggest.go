package cli

import (
	"fmt"
	"io"

	"taskdeck/internal/model"
	"taskdeck/internal/tasklist"

	"github.com/spf13/cobra"
)

type suggestionResult struct {
	Suggestion string      `json:"suggestion"`
	Copied     bool        `json:"copied"`
	Task       *model.Task `json:"task,omitempty"`
}

func (r suggestionResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, r.Suggestion); err != nil {
		return err
	}
	if r.Task != nil {
		if _, err := fmt.Fprintf(w, "added as task %d\n", r.Task.ID); err != nil {
			return err
		}
	}
	return nil
}

func newSuggestCmd(app *App) *cobra.Command {
	var doCopy bool
	var add bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Print a random task idea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := suggestionResult{Suggestion: app.suggestions().Next()}

			if doCopy {
				// Clipboard failures are reported, never fatal.
				if err := app.clipboard().Copy(res.Suggestion); err != nil {
					app.log().Warn("copy to clipboard failed", "err", err)
				} else {
					res.Copied = true
				}
			}

			if add {
				ss, err := openSession(cmd.Context(), app)
				if err != nil {
					return writeErr(cmd, err)
				}
				defer ss.Close()
				t := addSuggestion(ss.Tasks, res.Suggestion)
				if err := persistErr(ss); err != nil {
					return writeErr(cmd, err)
				}
				res.Task = &t
			}

			return writeOut(cmd, app, res)
		},
	}

	cmd.Flags().BoolVar(&doCopy, "copy", false, "Copy the suggestion to the system clipboard")
	cmd.Flags().BoolVar(&add, "add", false, "Also add the suggestion as a task")
	return cmd
}

func addSuggestion(l *tasklist.List, text string) model.Task {
	return l.Add(text, nil, false)
}
