// Package main implements the entry point for tasklist, an interactive
// personal task manager that keeps its tasks in a flat file and can
// "execute" every pending task concurrently.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/phrazzld/tasklist/internal/cli"
	"github.com/phrazzld/tasklist/internal/config"
	"github.com/phrazzld/tasklist/internal/platform/flatfile"
	"github.com/phrazzld/tasklist/internal/platform/logger"
	"github.com/phrazzld/tasklist/internal/task"
)

// TaskFile is the fixed task file in the working directory
const TaskFile = "tasks.txt"

// main always exits 0; failures are reported on stderr only.
func main() {
	flags := pflag.NewFlagSet("tasklist", pflag.ContinueOnError)
	configFile := flags.String("config", "", "path to an optional config file (yaml, json or toml)")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Ignoring invalid arguments: %v\n", err)
	}

	app := initializeApp(*configFile, os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(); err != nil {
		app.logger.Error("reading input failed", "error", err)
	}
}

// application holds the wired components of one interactive session
type application struct {
	config  *config.Config
	logger  *slog.Logger
	manager *task.Manager
	menu    *cli.Menu
}

// initializeApp loads configuration, sets up logging and wires the task
// manager to the console. It never fails: bad configuration falls back to
// defaults.
func initializeApp(configFile string, in io.Reader, out, errOut io.Writer) *application {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(errOut, "Failed to load configuration, using defaults: %v\n", err)
		cfg = config.Default()
	}

	l, err := logger.Setup(cfg.Log, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Failed to set up logger, using defaults: %v\n", err)
		l, _ = logger.Setup(config.Default().Log, errOut)
	}

	l.Debug("configuration loaded",
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"task_file", TaskFile)

	console := cli.NewConsole(out)
	notifier := task.MultiNotifier{
		cli.NewConsoleNotifier(console),
		task.NewLogNotifier(l),
	}

	engine := task.NewEngine(notifier, l)
	manager := task.NewManager(flatfile.NewOsRepository(), engine, l)

	return &application{
		config:  cfg,
		logger:  l,
		manager: manager,
		menu:    cli.NewMenu(in, console, errOut, manager, TaskFile, l),
	}
}

// Run starts the interactive session
func (a *application) Run() error {
	return a.menu.Run()
}
