package task

// Store is the in-memory ordered task sequence.
// It performs no locking; Manager serializes every call.
type Store struct {
	tasks []Task
}

// NewStore creates an empty Store
func NewStore() *Store {
	return &Store{}
}

// Add appends t to the end of the sequence
func (s *Store) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Snapshot returns an independent copy of the tasks in insertion order.
// The result is never nil.
func (s *Store) Snapshot() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Clear empties the sequence
func (s *Store) Clear() {
	s.tasks = nil
}

// ReplaceAll discards the current content and installs a copy of tasks
func (s *Store) ReplaceAll(tasks []Task) {
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
}

// Len returns the number of pending tasks
func (s *Store) Len() int {
	return len(s.tasks)
}
