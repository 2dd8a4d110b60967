package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/todo-go/internal/todo"
)

func plain(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, "never")
}

func TestConfirm(t *testing.T) {
	milk := todo.Task{Description: "buy milk", Tags: []string{"errand"}}
	tests := []struct {
		name string
		out  todo.Outcome
		want string
	}{
		{
			name: "add with tags",
			out:  todo.Outcome{Action: todo.AddAction{}, Index: 0, Task: milk},
			want: "Added task 0: buy milk [errand]\n",
		},
		{
			name: "add with several tags",
			out:  todo.Outcome{Action: todo.AddAction{}, Index: 3, Task: todo.Task{Description: "call", Tags: []string{"a", "b"}}},
			want: "Added task 3: call [a, b]\n",
		},
		{
			name: "add without tags",
			out:  todo.Outcome{Action: todo.AddAction{}, Index: 1, Task: todo.Task{Description: "read", Tags: []string{}}},
			want: "Added task 1: read\n",
		},
		{
			name: "done",
			out:  todo.Outcome{Action: todo.DoneAction{Index: 0}, Index: 0, Task: milk},
			want: "Marked task 0 as done: buy milk\n",
		},
		{
			name: "toggle to done",
			out:  todo.Outcome{Action: todo.ToggleAction{Index: 2}, Index: 2, Task: todo.Task{Description: "x", Done: true}},
			want: "Task 2 is now done: x\n",
		},
		{
			name: "toggle to incomplete",
			out:  todo.Outcome{Action: todo.ToggleAction{Index: 2}, Index: 2, Task: todo.Task{Description: "x"}},
			want: "Task 2 is now incomplete: x\n",
		},
		{
			name: "delete",
			out:  todo.Outcome{Action: todo.DeleteAction{Index: 0}, Index: 0, Task: milk},
			want: "Deleted task 0: buy milk\n",
		},
		{
			name: "edit",
			out:  todo.Outcome{Action: todo.EditAction{Index: 0}, Index: 0, Task: todo.Task{Description: "new"}, OldDescription: "old"},
			want: "Edited task 0: \"old\" -> \"new\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, plain(&buf).Confirm(tt.out))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestListEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := plain(&buf).List(todo.Tasks{}, todo.Filter{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, MsgNoTasks+"\n", buf.String())
}

func TestListLines(t *testing.T) {
	tasks := todo.Tasks{
		{Description: "buy milk", Tags: []string{"errand"}},
		{Description: "file taxes", Done: true, Tags: []string{}},
		{Description: "call mom", Tags: []string{"family", "phone"}},
	}

	var buf bytes.Buffer
	n, err := plain(&buf).List(tasks, todo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t,
		"  0 [ ] buy milk  #errand\n"+
			"  1 [x] file taxes\n"+
			"  2 [ ] call mom  #family #phone\n",
		buf.String())
}

func TestListFiltered(t *testing.T) {
	tasks := todo.Tasks{
		{Description: "a", Tags: []string{"work"}},
		{Description: "b", Done: true, Tags: []string{"work"}},
		{Description: "c", Tags: []string{}},
	}

	var buf bytes.Buffer
	n, err := plain(&buf).List(tasks, todo.Filter{Status: todo.StatusTodo, Tag: "WORK"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "  0 [ ] a  #work\n", buf.String())

	buf.Reset()
	n, err = plain(&buf).List(tasks, todo.Filter{Tag: "home"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, MsgNoneMatch+"\n", buf.String())
}

func TestListAlignsWideIndices(t *testing.T) {
	var tasks todo.Tasks
	for range 11 {
		tasks = tasks.Add("t", nil)
	}

	var buf bytes.Buffer
	_, err := plain(&buf).List(tasks, todo.Filter{})
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 11)
	assert.Equal(t, "   0 [ ] t", string(lines[0]))
	assert.Equal(t, "  10 [ ] t", string(lines[10]))
}

func TestAlwaysColorEmitsEscapes(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRenderer(&buf, "always").List(todo.Tasks{{Description: "a", Tags: []string{"x"}}}, todo.Filter{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "#x")
}

func TestAutoColorPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRenderer(&buf, "auto").List(todo.Tasks{{Description: "a", Done: true}}, todo.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "  0 [x] a\n", buf.String())
}
