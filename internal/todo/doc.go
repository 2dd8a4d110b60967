// Package todo holds the task model and the operations applied to a task list.
//
// A task list is an ordered slice of Task values. A task's position in the slice
// is its identity: there is no separate id, so deleting a task shifts every later
// task down by one index. Callers that keep indices across a Delete must re-read
// the list.
//
// # Operations
//
// Every operation is a method on Tasks that leaves the receiver untouched and
// returns the updated list:
//
//   - Add appends a new, incomplete task.
//   - SetDone marks a task done. Marking a done task again is not an error.
//   - Toggle flips the done flag and reports the new state.
//   - Delete removes a task and returns it.
//   - Edit replaces a description and returns the old one.
//   - List yields (index, task) pairs that satisfy a Filter, in index order.
//
// Index-taking operations fail with an *IndexError wrapping ErrOutOfRange when
// the index does not name an existing task.
//
// # Actions
//
// The mutations are also available as Action values (AddAction, DoneAction,
// ToggleAction, DeleteAction, EditAction). Apply dispatches an Action against a
// list and returns an Outcome describing what changed, which is what the CLI
// prints as a confirmation.
package todo
