package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nibzard/todo-go/internal/todo"
)

// Messages printed instead of a listing.
const (
	MsgNoTasks    = "No tasks found."
	MsgNoneMatch  = "No tasks match the filter."
	doneMarker    = "[x]"
	pendingMarker = "[ ]"
)

// Renderer writes command output: action confirmations and task listings.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to w in the given color mode.
func NewRenderer(w io.Writer, color string) *Renderer {
	return &Renderer{
		w:      w,
		styles: NewStyles(NewLipglossRenderer(w, color)),
	}
}

// Confirm prints the one-line confirmation for an applied action.
func (r *Renderer) Confirm(out todo.Outcome) error {
	_, err := fmt.Fprintln(r.w, r.confirmation(out))
	return err
}

func (r *Renderer) confirmation(out todo.Outcome) string {
	s := r.styles
	idx := strconv.Itoa(out.Index)
	switch out.Action.(type) {
	case todo.AddAction:
		line := s.Verb.Render("Added") + " task " + idx + ": " + out.Task.Description
		if len(out.Task.Tags) > 0 {
			line += " " + s.Tag.Render("["+strings.Join(out.Task.Tags, ", ")+"]")
		}
		return line
	case todo.DoneAction:
		return s.Verb.Render("Marked") + " task " + idx + " as " + s.Done.Render("done") + ": " + out.Task.Description
	case todo.ToggleAction:
		state := s.Pending.Render("incomplete")
		if out.Task.Done {
			state = s.Done.Render("done")
		}
		return "Task " + idx + " is now " + state + ": " + out.Task.Description
	case todo.DeleteAction:
		return s.Verb.Render("Deleted") + " task " + idx + ": " + out.Task.Description
	case todo.EditAction:
		return s.Verb.Render("Edited") + " task " + idx + ": " +
			strconv.Quote(out.OldDescription) + " -> " + strconv.Quote(out.Task.Description)
	default:
		return fmt.Sprintf("Applied %s to task %d", out.Action.Name(), out.Index)
	}
}

// List prints the tasks matching f, one per line, and reports how many were
// printed. An empty store prints MsgNoTasks; a store with no matches prints
// MsgNoneMatch.
func (r *Renderer) List(tasks todo.Tasks, f todo.Filter) (int, error) {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(r.w, MsgNoTasks)
		return 0, err
	}

	width := len(strconv.Itoa(len(tasks) - 1))
	n := 0
	for i, t := range tasks.List(f) {
		if _, err := fmt.Fprintln(r.w, r.line(i, t, width)); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		_, err := fmt.Fprintln(r.w, MsgNoneMatch)
		return 0, err
	}
	return n, nil
}

// line formats one listing row: "  0 [ ] buy milk  #errand".
func (r *Renderer) line(i int, t todo.Task, width int) string {
	s := r.styles
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(s.Index.Render(fmt.Sprintf("%*d", width, i)))
	b.WriteByte(' ')
	if t.Done {
		b.WriteString(s.Done.Render(doneMarker))
		b.WriteByte(' ')
		// lipgloss pads multi-line blocks; leave those untouched
		if strings.Contains(t.Description, "\n") {
			b.WriteString(t.Description)
		} else {
			b.WriteString(s.DoneText.Render(t.Description))
		}
	} else {
		b.WriteString(s.Pending.Render(pendingMarker))
		b.WriteByte(' ')
		b.WriteString(t.Description)
	}
	if len(t.Tags) > 0 {
		b.WriteString("  ")
		b.WriteString(s.Tag.Render(formatTags(t.Tags)))
	}
	return b.String()
}

func formatTags(tags []string) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return strings.Join(parts, " ")
}
