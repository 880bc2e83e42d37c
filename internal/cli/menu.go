package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/phrazzld/tasklist/internal/platform/flatfile"
	"github.com/phrazzld/tasklist/internal/task"
)

// Menu options
const (
	OptionAdd     = 1
	OptionList    = 2
	OptionExecute = 3
	OptionExit    = 4
)

const menuText = `
=== Task Manager ===
1. Add Task
2. List Tasks
3. Execute Tasks
4. Save and Exit
Choose: `

// Menu is the interactive loop over a task.Manager
type Menu struct {
	in      *bufio.Scanner
	console *Console
	errOut  io.Writer
	manager *task.Manager
	path    string
	logger  *slog.Logger
}

// NewMenu creates a Menu reading options from in. path is the task file
// loaded at startup and written on exit.
func NewMenu(
	in io.Reader,
	console *Console,
	errOut io.Writer,
	manager *task.Manager,
	path string,
	logger *slog.Logger,
) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), math.MaxInt)

	return &Menu{
		in:      scanner,
		console: console,
		errOut:  errOut,
		manager: manager,
		path:    path,
		logger:  logger.With("component", "menu"),
	}
}

// Run loads the task file, then serves menu options until the user exits or
// input ends. End of input behaves like the exit option. Failures are
// reported and never stop the loop; only a read error from in is returned.
func (m *Menu) Run() error {
	m.load()

	for {
		m.console.Printf("%s", menuText)

		line, ok := m.readLine()
		if !ok {
			m.saveAndExit()
			return m.in.Err()
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			option = 0
		}

		switch option {
		case OptionAdd:
			if !m.add() {
				m.saveAndExit()
				return m.in.Err()
			}
		case OptionList:
			m.list()
		case OptionExecute:
			m.manager.Execute()
		case OptionExit:
			m.saveAndExit()
			return nil
		default:
			m.console.Printf("Invalid option.\n")
		}
	}
}

// load is attempted once at startup; a missing file simply means no tasks yet
func (m *Menu) load() {
	n, err := m.manager.Load(m.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		m.logger.Info("no task file yet, starting empty", "path", m.path)
		fmt.Fprintf(m.errOut, "Error opening file for loading: %s\n", m.path)
		return
	case errors.Is(err, flatfile.ErrFileOpen):
		m.logger.Warn("failed to open task file", "path", m.path, "error", err)
		fmt.Fprintf(m.errOut, "Error opening file for loading: %s\n", m.path)
		return
	case err != nil:
		m.logger.Warn("failed to read task file", "path", m.path, "error", err)
		fmt.Fprintf(m.errOut, "Error reading file for loading: %v\n", err)
		return
	}
	m.console.Printf("Tasks loaded from %s (%d)\n", m.path, n)
}

// add prompts for a new task. It reports false when input ended.
func (m *Menu) add() bool {
	m.console.Printf("Task description: ")
	description, ok := m.readLine()
	if !ok {
		return false
	}

	priority, ok, valid := m.readInt("Priority (1-5): ")
	if !ok {
		return false
	}
	if !valid {
		m.console.Printf("Invalid number.\n")
		return true
	}

	deadline, ok, valid := m.readInt("Deadline (seconds): ")
	if !ok {
		return false
	}
	if !valid {
		m.console.Printf("Invalid number.\n")
		return true
	}

	m.manager.Add(task.Task{
		Description:     description,
		Priority:        priority,
		DeadlineSeconds: deadline,
	})
	m.console.Printf("Task added: %s (Priority: %d)\n", description, priority)
	return true
}

func (m *Menu) list() {
	tasks := m.manager.List()
	if len(tasks) == 0 {
		m.console.Printf("No pending tasks.\n")
		return
	}

	var b strings.Builder
	b.WriteString("\n--- Task List ---\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s | Priority: %d | Deadline: %ds\n", t.Description, t.Priority, t.DeadlineSeconds)
	}
	m.console.Printf("%s", b.String())
}

func (m *Menu) saveAndExit() {
	if err := m.manager.Save(m.path); err != nil {
		fmt.Fprintf(m.errOut, "Error opening file for saving: %v\n", err)
	} else {
		m.console.Printf("Tasks saved to %s\n", m.path)
	}
	m.console.Printf("Exiting...\n")
}

// readLine returns the next input line; false means input ended
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), true
}

// readInt prompts and parses a decimal integer. ok is false when input
// ended; valid is false when the line was not a number.
func (m *Menu) readInt(prompt string) (value int, ok bool, valid bool) {
	m.console.Printf("%s", prompt)
	line, ok := m.readLine()
	if !ok {
		return 0, false, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, true, false
	}
	return value, true, true
}
