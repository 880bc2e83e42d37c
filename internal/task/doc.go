// Package task holds the pending task list and the execution engine.
// A Manager owns the list and a single lock; executing a batch fans out one
// goroutine per task, waits for all of them while still holding the lock,
// and then clears the list.
package task
