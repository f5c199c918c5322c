package invoke

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestExec builds an Exec whose command echo goes nowhere, keeping
// test output readable.
func newTestExec() *Exec {
	return New(log.New(io.Discard))
}

// TestRun verifies that Run reports the child's real exit status for
// both success and failure.
func TestRun(t *testing.T) {
	e := newTestExec()

	tests := []struct {
		name     string
		script   string
		expected int
	}{
		{"success", "exit 0", 0},
		{"failure", "exit 1", 1},
		{"specific status", "exit 7", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := e.Run(context.Background(), "", "sh", "-c", tt.script)
			assert.Equal(t, tt.expected, status)
		})
	}
}

// TestRunMissingBinary verifies that a command that cannot be spawned at
// all reports status 1 instead of panicking or returning 0.
func TestRunMissingBinary(t *testing.T) {
	e := newTestExec()

	status := e.Run(context.Background(), "", "definitely-not-a-real-binary-vrdev")
	assert.Equal(t, 1, status)
}

// TestRunLines verifies that every stdout line reaches the callback in
// order and that the exit status still comes through after the stream.
func TestRunLines(t *testing.T) {
	e := newTestExec()

	var lines []string
	status := e.RunLines(context.Background(), "", func(line string) {
		lines = append(lines, line)
	}, "sh", "-c", `printf 'alpha\nbeta\ngamma\n'`)

	assert.Equal(t, 0, status)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, lines)
}

// TestRunLinesFailureStatus verifies that lines written before a nonzero
// exit are still delivered, and the status is preserved.
func TestRunLinesFailureStatus(t *testing.T) {
	e := newTestExec()

	var lines []string
	status := e.RunLines(context.Background(), "", func(line string) {
		lines = append(lines, line)
	}, "sh", "-c", `printf 'partial\n'; exit 3`)

	assert.Equal(t, 3, status)
	assert.Equal(t, []string{"partial"}, lines)
}

// TestCapture verifies that stdout and stderr are collected separately
// and the exit status is reported alongside them.
func TestCapture(t *testing.T) {
	e := newTestExec()

	stdout, stderr, status := e.Capture(context.Background(), "", "sh", "-c",
		`printf 'to stdout'; printf 'to stderr' >&2; exit 2`)

	assert.Equal(t, 2, status)
	assert.Equal(t, "to stdout", stdout)
	assert.Equal(t, "to stderr", stderr)
}

// TestCaptureWorkingDirectory verifies that the dir parameter sets the
// child's working directory.
func TestCaptureWorkingDirectory(t *testing.T) {
	e := newTestExec()

	dir := t.TempDir()
	stdout, _, status := e.Capture(context.Background(), dir, "pwd")
	require.Equal(t, 0, status)

	// Resolve symlinks on both sides because on macOS t.TempDir() lives
	// under /var, which is a symlink to /private/var.
	resolvedDir, _ := filepath.EvalSymlinks(dir)
	resolvedOut, _ := filepath.EvalSymlinks(strings.TrimSpace(stdout))
	assert.Equal(t, resolvedDir, resolvedOut)
}

// TestCommandLine verifies the echoed form of an argv.
func TestCommandLine(t *testing.T) {
	assert.Equal(t, "adb", commandLine("adb", nil))
	assert.Equal(t, "./gradlew assembledebug", commandLine("./gradlew", []string{"assembledebug"}))
	assert.Equal(t, "git submodule update --init --recursive",
		commandLine("git", []string{"submodule", "update", "--init", "--recursive"}))
}
