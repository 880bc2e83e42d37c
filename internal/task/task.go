package task

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Task is a user-defined unit of work. Tasks have no identity beyond their
// position in the list; duplicates are allowed and no field is validated.
type Task struct {
	// Description is free text supplied by the user
	Description string

	// Priority is expected to be in 1..5 but is stored only; it never
	// affects ordering or scheduling
	Priority int

	// DeadlineSeconds is how long the task "runs" when executed
	DeadlineSeconds int
}

// Deadline converts DeadlineSeconds into a duration using unit as one second.
// Zero or negative deadlines yield a non-positive duration. Values too large
// for time.Duration saturate at the maximum instead of wrapping.
func (t Task) Deadline(unit time.Duration) time.Duration {
	seconds := time.Duration(t.DeadlineSeconds)
	if unit <= 0 || seconds == 0 {
		return seconds * unit
	}
	if seconds > math.MaxInt64/unit {
		return time.Duration(math.MaxInt64)
	}
	if seconds < math.MinInt64/unit {
		return time.Duration(math.MinInt64)
	}
	return seconds * unit
}

// EngineState reports whether an execution batch is in progress
type EngineState int32

// Possible engine states
const (
	StateIdle EngineState = iota
	StateRunning
)

// String returns the lower-case state name
func (s EngineState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// BatchReport summarizes one completed execution batch
type BatchReport struct {
	// ID correlates the log lines and notifications of a single batch
	ID uuid.UUID

	// Tasks is the number of tasks in the snapshot that was executed
	Tasks int

	// StartedAt is when the first unit of work was spawned
	StartedAt time.Time

	// Elapsed is the wall-clock time until the slowest task finished
	Elapsed time.Duration
}

// TaskFile persists the ordered task list.
// Version: 1.0
type TaskFile interface {
	// Save writes tasks to path in list order
	Save(path string, tasks []Task) error

	// Load reads the ordered task list stored at path
	Load(path string) ([]Task, error)
}
