package task

import (
	"sync"

	"github.com/google/uuid"
)

// Event kinds recorded by RecordingNotifier
const (
	EventStarted        = "started"
	EventCompleted      = "completed"
	EventBatchCompleted = "batch_completed"
)

// NotifierEvent is a single notification captured by RecordingNotifier
type NotifierEvent struct {
	Kind    string
	BatchID uuid.UUID
	Task    Task
	Report  BatchReport
}

// RecordingNotifier implements Notifier for testing by recording every call
type RecordingNotifier struct {
	mutex  sync.Mutex
	events []NotifierEvent

	// OnBatchCompleted, if set, is called after the event is recorded
	OnBatchCompleted func(report BatchReport)
}

// NewRecordingNotifier creates an empty RecordingNotifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) TaskStarted(batchID uuid.UUID, t Task) {
	r.record(NotifierEvent{Kind: EventStarted, BatchID: batchID, Task: t})
}

func (r *RecordingNotifier) TaskCompleted(batchID uuid.UUID, t Task) {
	r.record(NotifierEvent{Kind: EventCompleted, BatchID: batchID, Task: t})
}

func (r *RecordingNotifier) BatchCompleted(report BatchReport) {
	r.record(NotifierEvent{Kind: EventBatchCompleted, BatchID: report.ID, Report: report})
	if r.OnBatchCompleted != nil {
		r.OnBatchCompleted(report)
	}
}

func (r *RecordingNotifier) record(e NotifierEvent) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far, in arrival order
func (r *RecordingNotifier) Events() []NotifierEvent {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := make([]NotifierEvent, len(r.events))
	copy(out, r.events)
	return out
}

// EventsOfKind returns the recorded events of a single kind
func (r *RecordingNotifier) EventsOfKind(kind string) []NotifierEvent {
	var out []NotifierEvent
	for _, e := range r.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
