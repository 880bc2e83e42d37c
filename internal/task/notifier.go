package task

import (
	"log/slog"

	"github.com/google/uuid"
)

// Notifier receives execution progress.
// TaskStarted and TaskCompleted are called concurrently from the batch's
// goroutines, so implementations must be safe for concurrent use.
// Version: 1.0
type Notifier interface {
	// TaskStarted is called when a task's unit of work begins
	TaskStarted(batchID uuid.UUID, t Task)

	// TaskCompleted is called once the task's deadline has elapsed
	TaskCompleted(batchID uuid.UUID, t Task)

	// BatchCompleted is called after the whole batch finished and the
	// list has been cleared
	BatchCompleted(report BatchReport)
}

// NopNotifier discards every notification
type NopNotifier struct{}

func (NopNotifier) TaskStarted(uuid.UUID, Task)   {}
func (NopNotifier) TaskCompleted(uuid.UUID, Task) {}
func (NopNotifier) BatchCompleted(BatchReport)    {}

// LogNotifier records execution progress as structured log events
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs through logger
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "execution")}
}

func (n *LogNotifier) TaskStarted(batchID uuid.UUID, t Task) {
	n.logger.Debug("task started",
		"batch_id", batchID,
		"description", t.Description,
		"deadline_seconds", t.DeadlineSeconds)
}

func (n *LogNotifier) TaskCompleted(batchID uuid.UUID, t Task) {
	n.logger.Debug("task completed",
		"batch_id", batchID,
		"description", t.Description)
}

func (n *LogNotifier) BatchCompleted(report BatchReport) {
	n.logger.Info("batch completed",
		"batch_id", report.ID,
		"task_count", report.Tasks,
		"elapsed", report.Elapsed)
}

// MultiNotifier forwards each notification to all of its members in order
type MultiNotifier []Notifier

func (m MultiNotifier) TaskStarted(batchID uuid.UUID, t Task) {
	for _, n := range m {
		n.TaskStarted(batchID, t)
	}
}

func (m MultiNotifier) TaskCompleted(batchID uuid.UUID, t Task) {
	for _, n := range m {
		n.TaskCompleted(batchID, t)
	}
}

func (m MultiNotifier) BatchCompleted(report BatchReport) {
	for _, n := range m {
		n.BatchCompleted(report)
	}
}

// Ensure implementations satisfy Notifier
var (
	_ Notifier = NopNotifier{}
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = MultiNotifier(nil)
)
