// Package ui renders command output and provides the interactive task browser.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/todo-go/internal/store"
	"github.com/nibzard/todo-go/internal/todo"
)

// ErrNotTTY is returned when the browser is started without a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// RunTUI starts the task browser on the store.
func RunTUI(ctx context.Context, st *store.Store, color string) error {
	if !IsTTY(os.Stdout) {
		return ErrNotTTY
	}
	model := newBrowser(ctx, st, NewStyles(NewLipglossRenderer(os.Stdout, color)))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(*browser); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}

type browser struct {
	ctx    context.Context
	store  *store.Store
	styles Styles

	tasks  todo.Tasks
	status todo.StatusFilter
	rows   []int // store indices currently visible
	cursor int   // position in rows
	loaded bool

	message  string
	err      error
	fatal    error
	showHelp bool
}

type tasksMsg struct {
	tasks todo.Tasks
	err   error
}

type appliedMsg struct {
	outcome todo.Outcome
	err     error
}

func newBrowser(ctx context.Context, st *store.Store, styles Styles) *browser {
	return &browser{ctx: ctx, store: st, styles: styles}
}

func (m *browser) Init() tea.Cmd {
	return m.load()
}

func (m *browser) load() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.store.View(m.ctx)
		return tasksMsg{tasks: tasks, err: err}
	}
}

func (m *browser) apply(action todo.Action) tea.Cmd {
	return func() tea.Msg {
		out, err := m.store.Apply(m.ctx, action)
		return appliedMsg{outcome: out, err: err}
	}
}

func (m *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tasksMsg:
		if msg.err != nil {
			if errors.Is(msg.err, context.Canceled) {
				m.fatal = msg.err
				return m, tea.Quit
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.loaded = true
		m.tasks = msg.tasks
		m.refilter()
	case appliedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.message = describe(msg.outcome)
		return m, m.load()
	}
	return m, nil
}

func (m *browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case " ", "x":
		if i, ok := m.selected(); ok {
			return m, m.apply(todo.ToggleAction{Index: i})
		}
	case "d":
		if i, ok := m.selected(); ok {
			return m, m.apply(todo.DeleteAction{Index: i})
		}
	case "r", "f5":
		m.message = ""
		return m, m.load()
	case "1":
		m.status = todo.StatusDone
		m.refilter()
	case "2":
		m.status = todo.StatusTodo
		m.refilter()
	case "0":
		m.status = todo.StatusAny
		m.refilter()
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *browser) selected() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return 0, false
	}
	return m.rows[m.cursor], true
}

// refilter recomputes the visible rows and keeps the cursor in range.
func (m *browser) refilter() {
	m.rows = m.rows[:0]
	for i := range m.tasks.List(todo.Filter{Status: m.status}) {
		m.rows = append(m.rows, i)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func describe(out todo.Outcome) string {
	switch out.Action.(type) {
	case todo.ToggleAction:
		state := "incomplete"
		if out.Task.Done {
			state = "done"
		}
		return fmt.Sprintf("Task %d is now %s", out.Index, state)
	case todo.DeleteAction:
		return fmt.Sprintf("Deleted task %d", out.Index)
	default:
		return fmt.Sprintf("Applied %s to task %d", out.Action.Name(), out.Index)
	}
}

func (m *browser) View() string {
	s := m.styles
	var b strings.Builder
	b.WriteString(s.Title.Render("todo") + "  " + s.Muted.Render(m.store.Path()) + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b, s)
		return b.String()
	}

	done, pending := m.tasks.Counts()
	b.WriteString(fmt.Sprintf("  Todo: %d  Done: %d", pending, done))
	if m.status != todo.StatusAny {
		b.WriteString(fmt.Sprintf("  Filter: %s (0 to clear)", m.status))
	}
	b.WriteString("\n\n")

	switch {
	case !m.loaded && m.err == nil:
		b.WriteString("Loading...\n")
	case len(m.tasks) == 0 && m.loaded:
		b.WriteString("  " + MsgNoTasks + "\n")
	case len(m.rows) == 0 && m.loaded:
		b.WriteString("  " + MsgNoneMatch + "\n")
	default:
		width := len(fmt.Sprint(len(m.tasks) - 1))
		for pos, i := range m.rows {
			cursor := "  "
			if pos == m.cursor {
				cursor = s.Cursor.Render("> ")
			}
			b.WriteString(cursor + formatRow(s, i, m.tasks[i], width) + "\n")
		}
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(s.Error.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.message != "" {
		b.WriteString(m.message + "\n\n")
	}

	writeFooter(&b, s)
	return b.String()
}

func formatRow(s Styles, i int, t todo.Task, width int) string {
	marker := s.Pending.Render(pendingMarker)
	desc := t.Description
	if t.Done {
		marker = s.Done.Render(doneMarker)
	}
	line := fmt.Sprintf("%*d %s %s", width, i, marker, strings.ReplaceAll(desc, "\n", " "))
	if len(t.Tags) > 0 {
		line += "  " + s.Tag.Render(formatTags(t.Tags))
	}
	return line
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  ↑/k, ↓/j     Move\n")
	b.WriteString("  space, x     Toggle done\n")
	b.WriteString("  d            Delete\n")
	b.WriteString("  1            Show done only\n")
	b.WriteString("  2            Show todo only\n")
	b.WriteString("  0            Show all\n")
	b.WriteString("  r, F5        Reload from disk\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
}

func writeFooter(b *strings.Builder, s Styles) {
	b.WriteString(s.Muted.Render("Press h for help | q to quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
