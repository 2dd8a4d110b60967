package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"github.com/nibzard/todo-go/internal/todo"
)

const (
	// DefaultLockTimeout bounds how long Update and View wait for the lock.
	DefaultLockTimeout = 2 * time.Second

	lockRetryDelay = 25 * time.Millisecond
	lockSuffix     = ".lock"
)

// Store is a task store file plus the lock that guards it.
type Store struct {
	path        string
	lockTimeout time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithLockTimeout sets how long to wait for the store lock. Non-positive
// values keep the default.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// New returns a Store for the file at path.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:        path,
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// LockPath returns the path of the advisory lock file.
func (s *Store) LockPath() string {
	return s.path + lockSuffix
}

// UpdateFunc computes the new task list from the current one. Returning an
// error abandons the update without writing.
type UpdateFunc func(todo.Tasks) (todo.Tasks, error)

// Update loads the store, applies fn and saves the result, holding an
// exclusive lock throughout. The store file is only written when fn succeeds.
func (s *Store) Update(ctx context.Context, fn UpdateFunc) (todo.Tasks, error) {
	lk := flock.New(s.LockPath())
	if err := s.acquire(ctx, lk.TryLockContext); err != nil {
		return nil, err
	}
	defer s.release(lk)

	current := Load(s.path)
	next, err := fn(current)
	if err != nil {
		return current, err
	}
	if err := Save(s.path, next); err != nil {
		return current, err
	}
	return next, nil
}

// Apply runs a single action through Update.
func (s *Store) Apply(ctx context.Context, action todo.Action) (todo.Outcome, error) {
	var outcome todo.Outcome
	_, err := s.Update(ctx, func(tasks todo.Tasks) (todo.Tasks, error) {
		next, out, err := todo.Apply(tasks, action)
		outcome = out
		return next, err
	})
	if err == nil {
		log.Debug("applied action", "action", action.Name(), "index", outcome.Index, "path", s.path)
	}
	return outcome, err
}

// View loads the store under a shared lock. A missing store yields an empty
// list without creating a lock file.
func (s *Store) View(ctx context.Context) (todo.Tasks, error) {
	if !Exists(s.path) {
		log.Debug("task store not found, starting empty", "path", s.path)
		return todo.Tasks{}, nil
	}
	lk := flock.New(s.LockPath())
	if err := s.acquire(ctx, lk.TryRLockContext); err != nil {
		return nil, err
	}
	defer s.release(lk)

	return Load(s.path), nil
}

func (s *Store) acquire(ctx context.Context, try func(context.Context, time.Duration) (bool, error)) error {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := try(lockCtx, lockRetryDelay)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: waited %s for %s", ErrLocked, s.lockTimeout, s.LockPath())
		}
		return fmt.Errorf("lock %s: %w", s.LockPath(), err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, s.LockPath())
	}
	log.Debug("acquired store lock", "path", s.LockPath())
	return nil
}

func (s *Store) release(lk *flock.Flock) {
	if err := lk.Unlock(); err != nil {
		log.Warn("failed to release store lock", "path", s.LockPath(), "err", err)
	}
}
