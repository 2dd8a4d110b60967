package cmd

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nibzard/todo-go/internal/datadir"
	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/utils"
)

// taskFlags holds the root command's task flags.
type taskFlags struct {
	tags      []string
	done      int
	toggle    int
	delete    int
	edit      int
	message   string
	showDone  bool
	showTodo  bool
	filterTag string
}

// request is what one root invocation asks for: a single action, or a
// listing with a filter when action is nil.
type request struct {
	action    todo.Action
	filter    todo.Filter
	bothShown bool
}

func (a *app) addTaskFlags(root *cobra.Command) {
	f := root.Flags()
	f.StringArrayVarP(&a.flags.tags, "tags", "t", nil, "tags for a new task (comma separated or repeated)")
	f.IntVar(&a.flags.done, "done", 0, "mark the task at `index` as done")
	f.IntVar(&a.flags.toggle, "toggle", 0, "toggle the task at `index`")
	f.IntVar(&a.flags.delete, "delete", 0, "delete the task at `index`")
	f.IntVar(&a.flags.edit, "edit", 0, "replace the description of the task at `index` (requires --message)")
	f.StringVarP(&a.flags.message, "message", "m", "", "new description for --edit")
	f.BoolVar(&a.flags.showDone, "show-done", false, "list only done tasks")
	f.BoolVar(&a.flags.showTodo, "show-todo", false, "list only incomplete tasks")
	f.StringVar(&a.flags.filterTag, "filter-tag", "", "list only tasks carrying this tag (case-insensitive)")

	root.RunE = a.runTask
}

// validateTaskArgs checks the root command's arguments and flags for
// conflicts. Cobra calls it before any command setup, so a rejected
// invocation never reads or writes the store.
func (a *app) validateTaskArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return conflict("expected one task text, got %d arguments (quote the text)", len(args))
	}
	req, err := resolveRequest(args, a.flags, cmd.Flags().Changed)
	if err != nil {
		return err
	}
	a.req = req
	return nil
}

// resolveRequest turns the positional arguments and flags into a request.
// changed reports whether a flag was given on the command line.
func resolveRequest(args []string, fl taskFlags, changed func(string) bool) (request, error) {
	hasText := len(args) == 1

	var mutations []string
	for _, name := range []string{"done", "toggle", "delete", "edit"} {
		if changed(name) {
			mutations = append(mutations, "--"+name)
		}
	}
	filtering := fl.showDone || fl.showTodo || changed("filter-tag")

	switch {
	case hasText && len(mutations) > 0:
		return request{}, conflict("task text cannot be combined with %s", mutations[0])
	case len(mutations) > 1:
		return request{}, conflict("only one of %s may be given", strings.Join(mutations, ", "))
	case changed("edit") != changed("message"):
		return request{}, ErrMissingMessage
	case changed("tags") && !hasText:
		return request{}, conflict("--tags only applies when adding a task")
	case filtering && (hasText || len(mutations) > 0):
		return request{}, conflict("list filters cannot be combined with adding or changing a task")
	}

	switch {
	case hasText:
		return request{action: todo.AddAction{Description: args[0], Tags: splitTags(fl.tags)}}, nil
	case changed("done"):
		return request{action: todo.DoneAction{Index: fl.done}}, nil
	case changed("toggle"):
		return request{action: todo.ToggleAction{Index: fl.toggle}}, nil
	case changed("delete"):
		return request{action: todo.DeleteAction{Index: fl.delete}}, nil
	case changed("edit"):
		return request{action: todo.EditAction{Index: fl.edit, Description: fl.message}}, nil
	}

	return request{
		filter: todo.Filter{
			Status: todo.NewStatusFilter(fl.showDone, fl.showTodo),
			Tag:    fl.filterTag,
		},
		bothShown: fl.showDone && fl.showTodo,
	}, nil
}

// splitTags splits each --tags value on commas and normalizes the result.
// Quotes and other characters inside a tag are kept as typed.
func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		tags = append(tags, strings.Split(v, ",")...)
	}
	return utils.NormalizeTags(tags)
}

func (a *app) runTask(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st := a.store()

	if a.req.action == nil {
		if a.req.bothShown {
			log.Warn("--show-done and --show-todo both given, showing done tasks")
		}
		tasks, err := st.View(ctx)
		if err != nil {
			return err
		}
		_, err = a.renderer().List(tasks, a.req.filter)
		return err
	}

	if err := datadir.Ensure(filepath.Dir(st.Path())); err != nil {
		return err
	}
	outcome, err := st.Apply(ctx, a.req.action)
	if err != nil {
		return err
	}
	return a.renderer().Confirm(outcome)
}
