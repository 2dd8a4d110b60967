package todo

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrOutOfRange is returned when an index does not name an existing task.
var ErrOutOfRange = errors.New("task index out of range")

// Task is a single to-do item.
type Task struct {
	Description string   `json:"description" yaml:"description" toml:"description"`
	Done        bool     `json:"done" yaml:"done" toml:"done"`
	Tags        []string `json:"tags" yaml:"tags" toml:"tags"`
}

// HasTag reports whether the task carries tag, ignoring case.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if strings.EqualFold(have, tag) {
			return true
		}
	}
	return false
}

// Tasks is an ordered task list. The index of a task is its identity.
type Tasks []Task

// IndexError reports an operation on an index outside the list.
type IndexError struct {
	Op    string // Operation that failed (e.g., "toggle", "delete")
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	switch e.Len {
	case 0:
		return fmt.Sprintf("%s: no task at index %d (the list is empty)", e.Op, e.Index)
	case 1:
		return fmt.Sprintf("%s: no task at index %d (valid index: 0)", e.Op, e.Index)
	default:
		return fmt.Sprintf("%s: no task at index %d (valid indices: 0-%d)", e.Op, e.Index, e.Len-1)
	}
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

func (ts Tasks) check(op string, i int) error {
	if i < 0 || i >= len(ts) {
		return &IndexError{Op: op, Index: i, Len: len(ts)}
	}
	return nil
}

// clone copies the list and the tag slices of its tasks so the copy can be
// modified without touching the original.
func (ts Tasks) clone() Tasks {
	out := make(Tasks, len(ts), len(ts)+1)
	for i, t := range ts {
		t.Tags = cloneTags(t.Tags)
		out[i] = t
	}
	return out
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}

// Normalize returns a copy of the list in which every task has a non-nil
// tag slice.
func (ts Tasks) Normalize() Tasks {
	if ts == nil {
		return Tasks{}
	}
	return ts.clone()
}

// Get returns the task at index i.
func (ts Tasks) Get(i int) (Task, error) {
	if err := ts.check("get", i); err != nil {
		return Task{}, err
	}
	t := ts[i]
	t.Tags = cloneTags(t.Tags)
	return t, nil
}

// Add appends a new incomplete task. Nil tags are stored as an empty slice.
func (ts Tasks) Add(description string, tags []string) Tasks {
	out := ts.clone()
	return append(out, Task{
		Description: description,
		Done:        false,
		Tags:        cloneTags(tags),
	})
}

// SetDone marks the task at index i as done.
func (ts Tasks) SetDone(i int) (Tasks, error) {
	if err := ts.check("done", i); err != nil {
		return ts, err
	}
	out := ts.clone()
	out[i].Done = true
	return out, nil
}

// Toggle flips the done flag of the task at index i and returns the new value.
func (ts Tasks) Toggle(i int) (Tasks, bool, error) {
	if err := ts.check("toggle", i); err != nil {
		return ts, false, err
	}
	out := ts.clone()
	out[i].Done = !out[i].Done
	return out, out[i].Done, nil
}

// Delete removes the task at index i and returns it. Tasks after i move down
// by one index.
func (ts Tasks) Delete(i int) (Tasks, Task, error) {
	if err := ts.check("delete", i); err != nil {
		return ts, Task{}, err
	}
	out := ts.clone()
	removed := out[i]
	return slices.Delete(out, i, i+1), removed, nil
}

// Edit replaces the description of the task at index i and returns the old one.
func (ts Tasks) Edit(i int, description string) (Tasks, string, error) {
	if err := ts.check("edit", i); err != nil {
		return ts, "", err
	}
	out := ts.clone()
	old := out[i].Description
	out[i].Description = description
	return out, old, nil
}

// List yields the index and task of every task matching f, in index order.
// The sequence can be ranged over any number of times.
func (ts Tasks) List(f Filter) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range ts {
			if !f.Match(t) {
				continue
			}
			if !yield(i, t) {
				return
			}
		}
	}
}

// Counts returns the number of done and incomplete tasks.
func (ts Tasks) Counts() (done, pending int) {
	for _, t := range ts {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
