package invoke

import (
	"bufio"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner abstracts child process execution. Every command the CLI issues
// goes through one of these three calls.
type Runner interface {
	// Run executes a command with stdin, stdout, and stderr inherited from
	// the CLI process, and returns the command's exit status.
	Run(ctx context.Context, dir, name string, args ...string) int

	// RunLines executes a command and feeds every line it writes to stdout
	// to fn, in order. Stderr stays attached to the CLI's stderr. The
	// returned status is the command's exit status after the stream ends.
	RunLines(ctx context.Context, dir string, fn func(line string), name string, args ...string) int

	// Capture executes a command and returns its stdout, stderr, and exit
	// status without echoing output to the terminal.
	Capture(ctx context.Context, dir, name string, args ...string) (stdout, stderr string, status int)
}

// Exec is the production Runner backed by os/exec.
type Exec struct {
	log *log.Logger
}

// New creates an Exec that echoes each command line through the given
// logger before running it.
func New(logger *log.Logger) *Exec {
	return &Exec{log: logger}
}

// Run executes a command in the foreground. The child shares the CLI's
// stdio, so interactive tools and progress output work unmodified.
func (e *Exec) Run(ctx context.Context, dir, name string, args ...string) int {
	e.log.Info(commandLine(name, args))

	// #nosec G204 — argv is assembled internally, not from raw user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return e.status(cmd.Run())
}

// RunLines executes a command and routes its stdout through fn one line at
// a time. Used for the device log stream, where each line is classified
// and colorized before printing.
func (e *Exec) RunLines(ctx context.Context, dir string, fn func(line string), name string, args ...string) int {
	e.log.Info(commandLine(name, args))

	// #nosec G204 — argv is assembled internally, not from raw user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	pipe, err := cmd.StdoutPipe()
	if err != nil {
		e.log.Error("failed to open stdout pipe", "command", name, "error", err)
		return 1
	}
	if err := cmd.Start(); err != nil {
		e.log.Error("failed to start command", "command", name, "error", err)
		return 1
	}

	scanner := bufio.NewScanner(pipe)
	// Device log lines can exceed bufio's default 64 KiB token limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}

	return e.status(cmd.Wait())
}

// Capture executes a command silently and returns what it wrote.
//
// Stdout and stderr are collected separately so callers can inspect
// diagnostics without mixing them into parseable output.
func (e *Exec) Capture(ctx context.Context, dir, name string, args ...string) (string, string, int) {
	e.log.Debug(commandLine(name, args))

	// #nosec G204 — argv is assembled internally, not from raw user input
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	status := e.status(cmd.Run())
	return stdout.String(), stderr.String(), status
}

// status converts the error from Run/Wait into a numeric exit status.
// Nonzero child exits carry their real status; spawn failures and
// signal deaths report 1.
func (e *Exec) status(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		// ExitCode is -1 when the child was killed by a signal.
		return 1
	}

	e.log.Error("command failed to start", "error", err)
	return 1
}

// commandLine renders an argv for echoing, the way the user would have
// typed it.
func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
