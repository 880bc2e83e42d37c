package task

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Manager owns the pending task list and the lock that guards it.
// Every operation holds the lock for its full duration, including Execute,
// which keeps the lock while the whole batch runs. An Add issued during a
// batch therefore lands after the batch's clear.
type Manager struct {
	mu     sync.Mutex
	store  *Store
	file   TaskFile
	engine *Engine

	// state is readable without mu so a running batch can be observed
	state atomic.Int32

	logger *slog.Logger
}

// NewManager creates a Manager with an empty task list
func NewManager(file TaskFile, engine *Engine, logger *slog.Logger) *Manager {
	return &Manager{
		store:  NewStore(),
		file:   file,
		engine: engine,
		logger: logger.With("component", "task_manager"),
	}
}

// Add appends t to the pending list
func (m *Manager) Add(t Task) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store.Add(t)
	m.logger.Debug("task added",
		"description", t.Description,
		"priority", t.Priority,
		"deadline_seconds", t.DeadlineSeconds,
		"task_count", m.store.Len())
}

// List returns a snapshot of the pending tasks in insertion order
func (m *Manager) List() []Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Snapshot()
}

// Len returns the number of pending tasks
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Len()
}

// State reports whether a batch is currently executing
func (m *Manager) State() EngineState {
	return EngineState(m.state.Load())
}

// Save writes the pending tasks to path
func (m *Manager) Save(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks := m.store.Snapshot()
	if err := m.file.Save(path, tasks); err != nil {
		m.logger.Error("failed to save tasks", "path", path, "error", err)
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	m.logger.Info("tasks saved", "path", path, "task_count", len(tasks))
	return nil
}

// Load replaces the pending list with the tasks stored at path and returns
// how many were loaded. On error the current list is left untouched.
func (m *Manager) Load(path string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tasks, err := m.file.Load(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load tasks: %w", err)
	}

	m.store.ReplaceAll(tasks)
	m.logger.Info("tasks loaded", "path", path, "task_count", len(tasks))
	return len(tasks), nil
}

// Execute runs every pending task concurrently and blocks until the slowest
// one finishes. The lock is held for the whole batch; afterwards the list is
// cleared and BatchCompleted is emitted once the lock is released.
func (m *Manager) Execute() BatchReport {
	report := m.runBatch()
	m.engine.notifier.BatchCompleted(report)
	return report
}

// runBatch performs the Idle -> Running -> Idle cycle under the lock
func (m *Manager) runBatch() BatchReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.Store(int32(StateRunning))
	defer m.state.Store(int32(StateIdle))

	snapshot := m.store.Snapshot()
	report := m.engine.Run(snapshot)

	// Clears the live list, not just the snapshot
	m.store.Clear()

	return report
}
