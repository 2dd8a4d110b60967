package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibzard/todo-go/internal/todo"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), opts...)
}

func TestUpdateCreatesStoreLazily(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, Exists(s.Path()))

	out, err := s.Apply(context.Background(), todo.AddAction{Description: "buy milk", Tags: []string{"errand"}})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Index)

	assert.True(t, Exists(s.Path()))
	loaded, err := LoadStrict(s.Path())
	require.NoError(t, err)
	assert.Equal(t, todo.Tasks{{Description: "buy milk", Done: false, Tags: []string{"errand"}}}, loaded)
}

func TestUpdateFailureDoesNotWrite(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, Save(s.Path(), todo.Tasks{}.Add("A", nil)))
	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	for _, action := range []todo.Action{
		todo.DoneAction{Index: 5},
		todo.ToggleAction{Index: 1},
		todo.DeleteAction{Index: -1},
		todo.EditAction{Index: 5, Description: "x"},
	} {
		_, err := s.Apply(context.Background(), action)
		assert.ErrorIs(t, err, todo.ErrOutOfRange, action.Name())

		after, err := os.ReadFile(s.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after, action.Name())
	}
}

func TestUpdateOnEmptyStoreOutOfRange(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Apply(context.Background(), todo.DoneAction{Index: 0})
	assert.ErrorIs(t, err, todo.ErrOutOfRange)
	assert.False(t, Exists(s.Path()), "a failed action must not create the store")
}

func TestUpdateOverCorruptStore(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("garbage"), 0o644))

	got, err := s.View(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = s.Apply(context.Background(), todo.AddAction{Description: "fresh"})
	require.NoError(t, err)
	assert.Len(t, Load(s.Path()), 1)
}

func TestScenarioSequence(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, Save(s.Path(), todo.Tasks{
		{Description: "A", Done: false, Tags: []string{}},
		{Description: "B", Done: true, Tags: []string{}},
	}))

	_, err := s.Apply(ctx, todo.DoneAction{Index: 0})
	require.NoError(t, err)
	tasks, err := s.View(ctx)
	require.NoError(t, err)
	assert.True(t, tasks[0].Done)
	assert.True(t, tasks[1].Done)

	out, err := s.Apply(ctx, todo.DeleteAction{Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "A", out.Task.Description)

	tasks, err = s.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, todo.Tasks{{Description: "B", Done: true, Tags: []string{}}}, tasks)
}

func TestUpdateFuncError(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	_, err := s.Update(context.Background(), func(todo.Tasks) (todo.Tasks, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, Exists(s.Path()))
}

func TestViewMissingStoreCreatesNothing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, todo.Tasks{}, got)

	_, err = os.Stat(s.LockPath())
	assert.True(t, os.IsNotExist(err))
}

func TestUpdateWaitsForLock(t *testing.T) {
	s := newTestStore(t, WithLockTimeout(50*time.Millisecond))

	held := flock.New(s.LockPath())
	require.NoError(t, held.Lock())
	defer func() { _ = held.Unlock() }()

	// A second descriptor on the same lock file conflicts on Linux and macOS.
	_, err := s.Apply(context.Background(), todo.AddAction{Description: "blocked"})
	assert.ErrorIs(t, err, ErrLocked)
	assert.False(t, Exists(s.Path()))
}

func TestUpdateHonoursCancellation(t *testing.T) {
	s := newTestStore(t, WithLockTimeout(time.Minute))

	held := flock.New(s.LockPath())
	require.NoError(t, held.Lock())
	defer func() { _ = held.Unlock() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Apply(ctx, todo.AddAction{Description: "blocked"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	s := newTestStore(t, WithLockTimeout(10*time.Second))
	const writers = 8

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine uses its own Store, as separate processes would.
			other := New(s.Path(), WithLockTimeout(10*time.Second))
			_, err := other.Apply(context.Background(), todo.AddAction{Description: "task"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Len(t, Load(s.Path()), writers)
}

func TestWithLockTimeoutIgnoresNonPositive(t *testing.T) {
	s := New("x", WithLockTimeout(0), WithLockTimeout(-time.Second))
	assert.Equal(t, DefaultLockTimeout, s.lockTimeout)
	assert.Equal(t, "x.lock", s.LockPath())
}
