package task

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func TestNewEngine_Defaults(t *testing.T) {
	engine := NewEngine(nil, setupTestLogger())

	assert.Equal(t, time.Second, engine.unit)
	assert.IsType(t, NopNotifier{}, engine.notifier)

	engine = NewEngine(nil, setupTestLogger(), WithTimeUnit(0))
	assert.Equal(t, time.Second, engine.unit, "non-positive unit should be ignored")

	engine = NewEngine(nil, setupTestLogger(), WithTimeUnit(time.Millisecond))
	assert.Equal(t, time.Millisecond, engine.unit)
}

func TestEngine_Run_DurationIsMaxNotSum(t *testing.T) {
	t.Parallel()

	unit := 50 * time.Millisecond
	engine := NewEngine(nil, setupTestLogger(), WithTimeUnit(unit))
	batch := []Task{
		{Description: "one", Priority: 1, DeadlineSeconds: 1},
		{Description: "three", Priority: 2, DeadlineSeconds: 3},
		{Description: "two", Priority: 3, DeadlineSeconds: 2},
	}

	start := time.Now()
	report := engine.Run(batch)
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 3*unit, "batch cannot finish before its slowest task")
	assert.Less(t, elapsed, 5*unit, "tasks should run in parallel, not one after another (sum is 6 units)")
	assert.GreaterOrEqual(t, report.Elapsed, 3*unit)
	assert.Equal(t, 3, report.Tasks)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.False(t, report.StartedAt.IsZero())
}

func TestEngine_Run_NotifiesEachTaskOnce(t *testing.T) {
	t.Parallel()

	notifier := NewRecordingNotifier()
	engine := NewEngine(notifier, setupTestLogger(), WithTimeUnit(time.Millisecond))
	batch := []Task{
		{Description: "a", DeadlineSeconds: 5},
		{Description: "b", DeadlineSeconds: 1},
		{Description: "a", DeadlineSeconds: 5},
		{Description: "c", DeadlineSeconds: 3},
	}

	report := engine.Run(batch)

	started := notifier.EventsOfKind(EventStarted)
	completed := notifier.EventsOfKind(EventCompleted)
	require.Len(t, started, len(batch))
	require.Len(t, completed, len(batch))

	var completedTasks []Task
	for _, e := range completed {
		assert.Equal(t, report.ID, e.BatchID)
		completedTasks = append(completedTasks, e.Task)
	}
	assert.ElementsMatch(t, batch, completedTasks)

	// Run itself never emits the batch-level notification
	assert.Empty(t, notifier.EventsOfKind(EventBatchCompleted))
}

func TestEngine_Run_StartPrecedesCompletionPerTask(t *testing.T) {
	t.Parallel()

	notifier := NewRecordingNotifier()
	engine := NewEngine(notifier, setupTestLogger(), WithTimeUnit(time.Millisecond))

	engine.Run([]Task{{Description: "only", DeadlineSeconds: 2}})

	events := notifier.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventStarted, events[0].Kind)
	assert.Equal(t, EventCompleted, events[1].Kind)
}

func TestEngine_Run_ZeroAndNegativeDeadlinesCompleteImmediately(t *testing.T) {
	t.Parallel()

	notifier := NewRecordingNotifier()
	engine := NewEngine(notifier, setupTestLogger()) // real seconds

	start := time.Now()
	report := engine.Run([]Task{
		{Description: "zero", DeadlineSeconds: 0},
		{Description: "negative", DeadlineSeconds: -3},
	})

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, 2, report.Tasks)
	assert.Len(t, notifier.EventsOfKind(EventCompleted), 2)
}

func TestEngine_Run_EmptyBatch(t *testing.T) {
	notifier := NewRecordingNotifier()
	engine := NewEngine(notifier, setupTestLogger())

	report := engine.Run(nil)

	assert.Equal(t, 0, report.Tasks)
	assert.Empty(t, notifier.Events())
}

func TestTask_Deadline(t *testing.T) {
	task := Task{DeadlineSeconds: 4}

	assert.Equal(t, 4*time.Second, task.Deadline(time.Second))
	assert.Equal(t, 40*time.Millisecond, task.Deadline(10*time.Millisecond))
}

func TestTask_Deadline_SaturatesInsteadOfWrapping(t *testing.T) {
	testCases := []struct {
		name     string
		seconds  int
		unit     time.Duration
		expected time.Duration
	}{
		{name: "largest exact", seconds: int(math.MaxInt64 / int64(time.Second)), unit: time.Second,
			expected: time.Duration(math.MaxInt64/int64(time.Second)) * time.Second},
		{name: "just over", seconds: int(math.MaxInt64/int64(time.Second)) + 1, unit: time.Second,
			expected: time.Duration(math.MaxInt64)},
		{name: "max int", seconds: math.MaxInt, unit: time.Millisecond, expected: time.Duration(math.MaxInt64)},
		{name: "min int", seconds: math.MinInt, unit: time.Second, expected: time.Duration(math.MinInt64)},
		{name: "negative in range", seconds: -3, unit: time.Second, expected: -3 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Task{DeadlineSeconds: tc.seconds}.Deadline(tc.unit)

			assert.Equal(t, tc.expected, got)
			if tc.seconds > 0 {
				assert.Positive(t, got)
			}
		})
	}
}

func TestEngineState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "unknown", EngineState(7).String())
}
