package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/phrazzld/tasklist/internal/task"
)

// Delimiter separates the fields of a task line
const Delimiter = ";"

// initialLineBuffer is the starting scan buffer; it grows without limit so
// long descriptions still load.
const initialLineBuffer = 64 * 1024

// ErrFileOpen is returned when the task file cannot be opened for reading or writing.
// A missing file on Load also satisfies errors.Is(err, fs.ErrNotExist).
var ErrFileOpen = errors.New("cannot open task file")

// Repository stores tasks as one '<description>;<priority>;<deadline>' line each.
type Repository struct {
	fs afero.Fs
}

// NewRepository creates a Repository on top of fs
func NewRepository(fs afero.Fs) *Repository {
	return &Repository{fs: fs}
}

// NewOsRepository creates a Repository backed by the operating system's file system
func NewOsRepository() *Repository {
	return NewRepository(afero.NewOsFs())
}

// Save writes tasks to path in list order, truncating any previous content.
// A failure part-way through leaves whatever was already written.
func (r *Repository) Save(path string, tasks []task.Task) (err error) {
	f, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer multierr.AppendFunc(&err, f.Close)

	w := bufio.NewWriter(f)
	for _, t := range tasks {
		if _, err := w.WriteString(EncodeLine(t) + "\n"); err != nil {
			return fmt.Errorf("failed to write task %q: %w", t.Description, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush task file: %w", err)
	}
	return nil
}

// Load reads tasks from path. The first line that does not decode ends the
// read: tasks decoded before it are returned and the rest of the file is
// not examined.
func (r *Repository) Load(path string) (tasks []task.Task, err error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer multierr.AppendFunc(&err, f.Close)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt)
	for scanner.Scan() {
		t, ok := DecodeLine(scanner.Text())
		if !ok {
			return tasks, nil
		}
		tasks = append(tasks, t)
	}

	if err := scanner.Err(); err != nil {
		return tasks, fmt.Errorf("failed to read task file: %w", err)
	}
	return tasks, nil
}

// EncodeLine formats t without a trailing newline. Descriptions are written
// verbatim; one containing the delimiter will not decode again.
func EncodeLine(t task.Task) string {
	return t.Description + Delimiter +
		strconv.Itoa(t.Priority) + Delimiter +
		strconv.Itoa(t.DeadlineSeconds)
}

// DecodeLine parses a single task line. It reports false unless the line has
// exactly three fields with decimal integer priority and deadline.
func DecodeLine(line string) (task.Task, bool) {
	line = strings.TrimSuffix(line, "\r")

	fields := strings.Split(line, Delimiter)
	if len(fields) != 3 {
		return task.Task{}, false
	}

	priority, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return task.Task{}, false
	}
	deadline, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return task.Task{}, false
	}

	return task.Task{
		Description:     fields[0],
		Priority:        priority,
		DeadlineSeconds: deadline,
	}, true
}

// Ensure Repository implements task.TaskFile
var _ task.TaskFile = (*Repository)(nil)
