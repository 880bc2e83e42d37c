package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/tasklist/internal/task"
)

// Console serializes writes to the user-facing output. Execution goroutines
// and the menu share it.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole wraps w
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Printf formats and writes a message atomically
func (c *Console) Printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, format, args...)
}

// ConsoleNotifier prints execution progress for the user
type ConsoleNotifier struct {
	console *Console
}

// NewConsoleNotifier creates a notifier printing to console
func NewConsoleNotifier(console *Console) *ConsoleNotifier {
	return &ConsoleNotifier{console: console}
}

func (n *ConsoleNotifier) TaskStarted(_ uuid.UUID, t task.Task) {
	n.console.Printf("Executing: %s (estimated time: %ds)...\n", t.Description, t.DeadlineSeconds)
}

func (n *ConsoleNotifier) TaskCompleted(_ uuid.UUID, t task.Task) {
	n.console.Printf("Task completed: %s!\n", t.Description)
}

func (n *ConsoleNotifier) BatchCompleted(task.BatchReport) {
	n.console.Printf("All tasks completed.\n")
}

var _ task.Notifier = (*ConsoleNotifier)(nil)
