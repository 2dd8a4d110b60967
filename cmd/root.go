// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/store"
	"github.com/nibzard/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// app carries the state shared by the command tree of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	global config.Flags
	flags  taskFlags
	req    request
	cfg    *config.Config
}

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	root := NewRootCommand(os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing command output to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "todo [task] [flags]",
		Short: "A small command-line task tracker",
		Long: `todo keeps a flat list of tasks in a single JSON file.

With a task text it adds a task. With --done, --toggle, --delete or --edit it
changes the task at that index. With no arguments it lists tasks, optionally
filtered by --show-done, --show-todo and --filter-tag.

Indices are positions in the list and shift down after a delete. To add a task
named like a subcommand, put it after --:  todo -- doctor`,
		Example: `  todo "buy milk" --tags errand,home
  todo --done 0
  todo --edit 1 -m "call mom tonight"
  todo --show-todo --filter-tag errand`,
		Args:              a.validateTaskArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.global.StoreFile, "file", "", "task store path (default: tasks.json in the data directory)")
	pf.StringVar(&a.global.Color, "color", "", "colored output: auto, always or never")
	pf.StringVar(&a.global.LogLevel, "log-level", "", "diagnostic level: debug, info, warn or error")
	pf.StringVar(&a.global.LogFormat, "log-format", "", "diagnostic format: text, json or logfmt")
	pf.StringVar(&a.global.ConfigFile, "config", "", "config file to load after the user and project files")

	a.addTaskFlags(root)

	root.AddCommand(
		newDoctorCommand(a),
		newExportCommand(a),
		newTUICommand(a),
		newPathCommand(a),
		newConfigCommand(a),
		newVersionCommand(a),
	)
	return root
}

// setup loads configuration and installs the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.global)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg
	logging.Install(a.errOut, logging.FromConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.Color == config.ColorNever,
	))
	log.Debug("configuration loaded", "store", cfg.StoreFile, "files", cfg.Files)
	return nil
}

func (a *app) store() *store.Store {
	return store.New(a.cfg.StoreFile, store.WithLockTimeout(a.cfg.LockTimeout()))
}

func (a *app) renderer() *ui.Renderer {
	return ui.NewRenderer(a.out, a.cfg.Color)
}
