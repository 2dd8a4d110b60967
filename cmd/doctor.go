package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/store"
	"github.com/nibzard/todo-go/internal/todo"
)

var errDoctorFailed = errors.New("doctor checks failed")

func newDoctorCommand(a *app) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration and task store health",
		Long: `Reports the configuration files in use, the task store location, whether the
store parses and matches the expected format, and task counts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.doctor(cmd.Context(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every task")
	return cmd
}

func (a *app) doctor(ctx context.Context, verbose bool) error {
	w := a.out
	allOK := true

	// Configuration
	fmt.Fprintln(w, "Configuration:")
	if len(a.cfg.Files) == 0 {
		fmt.Fprintln(w, "  ✅ Built-in defaults (no config file found)")
	}
	for _, f := range a.cfg.Files {
		fmt.Fprintf(w, "  ✅ %s\n", f)
	}
	fmt.Fprintln(w)

	// Data directory
	st := a.store()
	dir := filepath.Dir(st.Path())
	fmt.Fprintf(w, "Data directory: %s\n", dir)
	if info, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (will be created on first change)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	// Task store
	fmt.Fprintf(w, "Task store: %s\n", st.Path())
	if !a.checkStore(ctx, w, st, verbose) {
		allOK = false
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed. Tasks may be shown as empty until the store is repaired.")
	return errDoctorFailed
}

func (a *app) checkStore(ctx context.Context, w io.Writer, st *store.Store, verbose bool) bool {
	info, err := os.Stat(st.Path())
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (will be created on first add)")
			return true
		}
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	if info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		return false
	}
	fmt.Fprintln(w, "  ✅ OK")

	// Not locked by a writer
	if _, err := st.View(ctx); err != nil {
		fmt.Fprintf(w, "  ❌ Lock: %v\n", err)
		return false
	}

	tasks, loadErr := store.LoadStrict(st.Path())
	if loadErr != nil {
		fmt.Fprintf(w, "  ❌ Load error: %v\n", loadErr)
	}

	data, err := os.ReadFile(st.Path())
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}
	result := store.Validate(data)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  ⚠️  %s\n", warning)
	}
	if result.Valid {
		fmt.Fprintln(w, "  ✅ Valid")
	} else {
		fmt.Fprintln(w, "  ❌ Validation failed:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "     - %v\n", e)
		}
	}
	if loadErr != nil || !result.Valid {
		return false
	}

	done, pending := tasks.Counts()
	fmt.Fprintf(w, "  Tasks: %d (todo: %d, done: %d)\n", len(tasks), pending, done)
	if verbose {
		if _, err := a.renderer().List(tasks, todo.Filter{}); err != nil {
			fmt.Fprintf(w, "  ❌ Listing tasks: %v\n", err)
			return false
		}
	}
	return true
}
