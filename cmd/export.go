package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/store"
)

func newExportCommand(a *app) *cobra.Command {
	var (
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as JSON, YAML or TOML",
		Long: `Writes every task to stdout or to the file given with -o. Without --format the
format follows the output file extension, falling back to JSON.`,
		Example: `  todo export --format yaml
  todo export -o tasks.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") && output != "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			f, err := store.ParseFormat(format)
			if err != nil {
				if cmd.Flags().Changed("format") {
					return err
				}
				f = store.FormatJSON
			}

			tasks, err := a.store().View(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" {
				return store.Export(a.out, tasks, f)
			}
			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := store.Export(file, tasks, f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			log.Info("exported tasks", "count", len(tasks), "format", f, "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: json, yaml or toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}
