package todo

import "strings"

// StatusFilter selects tasks by completion state.
type StatusFilter int

const (
	StatusAny StatusFilter = iota
	StatusDone
	StatusTodo
)

func (s StatusFilter) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusTodo:
		return "todo"
	default:
		return "any"
	}
}

// NewStatusFilter builds a status filter from the --show-done and --show-todo
// flags. When both are set, done wins.
func NewStatusFilter(showDone, showTodo bool) StatusFilter {
	switch {
	case showDone:
		return StatusDone
	case showTodo:
		return StatusTodo
	default:
		return StatusAny
	}
}

// Filter is the conjunction of a status filter and an optional tag.
type Filter struct {
	Status StatusFilter
	// Tag, when non-empty, must equal one of the task's tags, ignoring case.
	Tag string
}

// IsZero reports whether the filter matches every task.
func (f Filter) IsZero() bool {
	return f.Status == StatusAny && strings.TrimSpace(f.Tag) == ""
}

// Match reports whether t satisfies the filter.
func (f Filter) Match(t Task) bool {
	switch f.Status {
	case StatusDone:
		if !t.Done {
			return false
		}
	case StatusTodo:
		if t.Done {
			return false
		}
	}
	tag := strings.TrimSpace(f.Tag)
	if tag == "" {
		return true
	}
	return t.HasTag(tag)
}
