package task

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
)

// EngineOption customizes an Engine
type EngineOption func(*Engine)

// WithTimeUnit sets the duration of one deadline "second".
// Non-positive values are ignored.
func WithTimeUnit(unit time.Duration) EngineOption {
	return func(e *Engine) {
		if unit > 0 {
			e.unit = unit
		}
	}
}

// Engine simulates execution of a batch of tasks. Every task gets its own
// goroutine that sleeps for the task's deadline; Run joins all of them.
type Engine struct {
	// notifier receives per-task and per-batch progress
	notifier Notifier

	// unit is the length of one deadline second
	unit time.Duration

	logger *slog.Logger
}

// NewEngine creates an Engine. A nil notifier discards notifications.
func NewEngine(notifier Notifier, logger *slog.Logger, opts ...EngineOption) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	e := &Engine{
		notifier: notifier,
		unit:     time.Second,
		logger:   logger.With("component", "engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes every task in batch concurrently and returns once the slowest
// one has finished. Units share nothing but their own copy of the task, and
// none of them can fail.
func (e *Engine) Run(batch []Task) BatchReport {
	report := BatchReport{
		ID:        uuid.New(),
		Tasks:     len(batch),
		StartedAt: time.Now(),
	}
	logger := e.logger.With("batch_id", report.ID)
	logger.Info("starting batch", "task_count", len(batch))

	var wg conc.WaitGroup
	for _, t := range batch {
		wg.Go(func() {
			e.execute(report.ID, t)
		})
	}
	wg.Wait()

	report.Elapsed = time.Since(report.StartedAt)
	logger.Debug("all units joined", "elapsed", report.Elapsed)

	return report
}

// execute runs a single unit of work
func (e *Engine) execute(batchID uuid.UUID, t Task) {
	e.notifier.TaskStarted(batchID, t)

	if d := t.Deadline(e.unit); d > 0 {
		time.Sleep(d)
	}

	e.notifier.TaskCompleted(batchID, t)
}
