package todo

import "fmt"

// Action is one mutation of a task list. The set of actions is closed: only
// the types in this package implement it.
type Action interface {
	// Name is the short verb used in logs and error messages.
	Name() string
	isAction()
}

// AddAction appends a new task.
type AddAction struct {
	Description string
	Tags        []string
}

// DoneAction marks a task as done.
type DoneAction struct {
	Index int
}

// ToggleAction flips a task's done flag.
type ToggleAction struct {
	Index int
}

// DeleteAction removes a task.
type DeleteAction struct {
	Index int
}

// EditAction replaces a task's description.
type EditAction struct {
	Index       int
	Description string
}

func (AddAction) Name() string    { return "add" }
func (DoneAction) Name() string   { return "done" }
func (ToggleAction) Name() string { return "toggle" }
func (DeleteAction) Name() string { return "delete" }
func (EditAction) Name() string   { return "edit" }

func (AddAction) isAction()    {}
func (DoneAction) isAction()   {}
func (ToggleAction) isAction() {}
func (DeleteAction) isAction() {}
func (EditAction) isAction()   {}

// Outcome describes the effect of an applied action.
type Outcome struct {
	Action Action
	// Index is the index the action addressed. For AddAction it is the index
	// of the new task.
	Index int
	// Task is the task after the action, or the removed task for DeleteAction.
	Task Task
	// OldDescription is set by EditAction.
	OldDescription string
}

// Apply runs action against tasks. On error the returned list is tasks itself.
func Apply(tasks Tasks, action Action) (Tasks, Outcome, error) {
	out := Outcome{Action: action}

	switch a := action.(type) {
	case AddAction:
		next := tasks.Add(a.Description, a.Tags)
		out.Index = len(next) - 1
		out.Task = next[out.Index]
		return next, out, nil

	case DoneAction:
		next, err := tasks.SetDone(a.Index)
		if err != nil {
			return tasks, out, err
		}
		out.Index = a.Index
		out.Task = next[a.Index]
		return next, out, nil

	case ToggleAction:
		next, _, err := tasks.Toggle(a.Index)
		if err != nil {
			return tasks, out, err
		}
		out.Index = a.Index
		out.Task = next[a.Index]
		return next, out, nil

	case DeleteAction:
		next, removed, err := tasks.Delete(a.Index)
		if err != nil {
			return tasks, out, err
		}
		out.Index = a.Index
		out.Task = removed
		return next, out, nil

	case EditAction:
		next, old, err := tasks.Edit(a.Index, a.Description)
		if err != nil {
			return tasks, out, err
		}
		out.Index = a.Index
		out.Task = next[a.Index]
		out.OldDescription = old
		return next, out, nil

	default:
		return tasks, out, fmt.Errorf("unsupported action %T", action)
	}
}
