// Package store reads and writes the task store file.
//
// The store is a single JSON file whose top-level value is an array of task
// records:
//
//	[
//	  {
//	    "description": "buy milk",
//	    "done": false,
//	    "tags": ["errand"]
//	  }
//	]
//
// There is no envelope and no version field. Records written by older releases
// may lack "tags"; they load with an empty tag list. A record missing
// "description" or "done" loads with an empty description or as not done, and
// Validate reports it as a warning rather than an error. Unknown fields are ignored
// and dropped on the next write.
//
// # Loading
//
// Load is tolerant: a missing file or one that does not parse yields an empty
// list. LoadStrict reports both conditions as errors and is what `todo doctor`
// uses.
//
// # Writing
//
// Save replaces the whole file. It writes a temporary file in the same
// directory and renames it over the store, using 2-space indentation and a
// trailing newline.
//
// # Locking
//
// Store.Update holds an exclusive advisory lock on "<path>.lock" across
// load, change and save, so two invocations against the same file serialize
// instead of losing one writer's change. Store.View takes a shared lock.
package store
