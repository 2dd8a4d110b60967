package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/datadir"
	"github.com/nibzard/todo-go/internal/ui"
)

func newTUICommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and update tasks interactively",
		Long: `Opens a terminal browser over the task list. Keys: up/down or k/j move,
space or x toggles, d deletes, 1 shows done, 2 shows todo, 0 shows all,
r reloads, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := a.store()
			if err := datadir.Ensure(filepath.Dir(st.Path())); err != nil {
				return err
			}
			return ui.RunTUI(cmd.Context(), st, a.cfg.Color)
		},
	}
}
