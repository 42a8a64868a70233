package cli

import (
	"fmt"
	"io"

	"taskdeck/internal/store"

	"github.com/spf13/cobra"
)

type workspaceInfo struct {
	Workspace string `json:"workspace"`
	Dir       string `json:"dir"`
}

func (w workspaceInfo) WriteText(out io.Writer) error {
	_, err := fmt.Fprintf(out, "%s\t%s\n", w.Workspace, w.Dir)
	return err
}

type workspaceNames []string

func (n workspaceNames) WriteText(w io.Writer) error {
	for _, name := range n {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func newWorkspaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Workspace management (each workspace holds its own task list)",
	}

	cmd.AddCommand(newWorkspaceListCmd(app))
	cmd.AddCommand(newWorkspaceUseCmd(app))
	cmd.AddCommand(newWorkspaceCurrentCmd(app))

	return cmd
}

func newWorkspaceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.ListWorkspaces()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, workspaceNames(names))
		},
	}
}

func newWorkspaceUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Set the current workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := store.NormalizeWorkspaceName(args[0])
			if err != nil {
				return writeErr(cmd, usageErrorf("%v", err))
			}
			dir, err := store.WorkspaceDir(name)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := (store.Store{Dir: dir}).Ensure(); err != nil {
				return writeErr(cmd, err)
			}

			cfg, err := store.LoadConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg.CurrentWorkspace = name
			if err := store.SaveConfig(cfg); err != nil {
				return writeErr(cmd, err)
			}

			app.Workspace = name
			app.Dir = dir
			return writeOut(cmd, app, workspaceInfo{Workspace: name, Dir: dir}, "taskdeck tasks list")
		},
	}
}

func newWorkspaceCurrentCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the workspace commands would use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			explicitDir := app.Dir != ""
			dir, err := resolveDir(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			name := app.Workspace
			if explicitDir {
				name = ""
			}
			return writeOut(cmd, app, workspaceInfo{Workspace: name, Dir: dir})
		},
	}
}
