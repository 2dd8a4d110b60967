package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/config"
)

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the task store path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, a.cfg.StoreFile)
			return err
		},
	}
}

func newConfigCommand(a *app) *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and where each value came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.out
			if example {
				_, err := fmt.Fprint(w, config.ExampleConfig())
				return err
			}
			if len(a.cfg.Files) == 0 {
				fmt.Fprintln(w, "# no config file found")
			}
			for _, f := range a.cfg.Files {
				fmt.Fprintf(w, "# loaded %s\n", f)
			}
			for _, key := range config.Fields() {
				fmt.Fprintf(w, "%-16s = %-30s (%s)\n", key, a.cfg.Value(key), a.cfg.Source(key))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "print an example config file")
	return cmd
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.out, "todo version %s\n", Version)
			return err
		},
	}
}
