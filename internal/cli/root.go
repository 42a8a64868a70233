package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"taskdeck/internal/format"
	"taskdeck/internal/logging"
	"taskdeck/internal/store"
	"taskdeck/internal/suggest"
	"taskdeck/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	Workspace  string
	PrettyJSON bool
	Format     string
	LogLevel   string

	logger *slog.Logger

	// Test seams.
	generator *suggest.Generator
	copier    suggest.Copier
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "taskdeck",
		Short:        "taskdeck (local-first) task manager: TUI + CLI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  taskdeck

  # Scriptable commands
  taskdeck tasks add "Buy milk" --priority high
  taskdeck tasks list --format text
  taskdeck done 1735689600000

  # Ask for something to do
  taskdeck suggest --copy
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return writeErr(cmd, usageErrorf("unknown --format %q (json|text)", app.Format))
		}
		if app.logger == nil {
			app.logger = logging.New(cmd.ErrOrStderr(), app.LogLevel)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TASKDECK_DIR", ""), "Path to the store dir (overrides workspace resolution)")
	cmd.PersistentFlags().StringVar(&app.Workspace, "workspace", envOr("TASKDECK_WORKSPACE", ""), "Workspace name (default: config currentWorkspace, then 'default')")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TASKDECK_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr(logging.EnvLevel, "warn"), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newSuggestCmd(app))
	cmd.AddCommand(newWorkspaceCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	logger, closeLog, err := logging.ForTUI(app.LogLevel)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer func() { _ = closeLog() }()
	app.logger = logger

	ss, err := openSession(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer ss.Close()

	cfg, err := store.LoadConfig()
	if err != nil {
		logger.Warn("load config failed; using defaults", "err", err)
		cfg = &store.GlobalConfig{}
	}
	return tui.Run(tui.Options{
		Session:   ss,
		Config:    cfg,
		Logger:    logger,
		Generator: app.generator,
		Copier:    app.clipboard(),
	})
}

// resolveDir picks the store dir.
//
// Workspace-first:
// 1) --dir
// 2) --workspace
// 3) config.json currentWorkspace
// 4) "default"
func resolveDir(app *App) (string, error) {
	if strings.TrimSpace(app.Dir) != "" {
		return app.Dir, nil
	}
	// A broken config.json must not lock the user out of their tasks.
	cfg, err := store.LoadConfig()
	if err != nil {
		app.log().Warn("load config failed; using defaults", "err", err)
		cfg = &store.GlobalConfig{}
	}
	name := strings.TrimSpace(app.Workspace)
	if name == "" {
		name = cfg.CurrentWorkspace
	}
	if name == "" {
		name = "default"
	}
	dir, err := cfg.WorkspaceDir(name)
	if err != nil {
		return "", err
	}
	app.Workspace = name
	app.Dir = dir
	return dir, nil
}

func openSession(ctx context.Context, app *App) (*store.Session, error) {
	dir, err := resolveDir(app)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return store.Store{Dir: dir}.Open(ctx, app.log())
}

func (app *App) log() *slog.Logger {
	if app.logger == nil {
		return slog.Default()
	}
	return app.logger
}

func (app *App) suggestions() *suggest.Generator {
	if app.generator == nil {
		app.generator = suggest.Default()
	}
	return app.generator
}

func (app *App) clipboard() suggest.Copier {
	if app.copier == nil {
		return suggest.ClipboardCopier{}
	}
	return app.copier
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut prints data in the selected format. JSON output is wrapped as {"data": ...}.
func writeOut(cmd *cobra.Command, app *App, data any, hints ...string) error {
	if app.Format == "text" {
		return format.Write(cmd.OutOrStdout(), data, app.Format, app.PrettyJSON)
	}
	env := map[string]any{"data": data}
	if len(hints) > 0 {
		env["_hints"] = hints
	}
	return format.Write(cmd.OutOrStdout(), env, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
