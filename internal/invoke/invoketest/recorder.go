// Package invoketest provides a scripted invoke.Runner for tests.
//
// The Recorder records every command the code under test issues and
// returns canned results instead of spawning processes, so command
// dispatch and argument composition can be verified hermetically.
package invoketest

import (
	"context"
	"strings"
)

// Call captures one command issued through the Recorder.
type Call struct {
	// Dir is the working directory the command was asked to run in.
	Dir string

	// Name is the binary name or path.
	Name string

	// Args is the argv after the binary name.
	Args []string
}

// Line renders the call the way it would appear on a shell prompt,
// which is also the key used to look up scripted results.
func (c Call) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result scripts the outcome of one command line.
type Result struct {
	// Status is the exit status to report. The zero value means success.
	Status int

	// Stdout and Stderr are returned from Capture.
	Stdout string
	Stderr string

	// Lines are fed to the RunLines callback, in order.
	Lines []string
}

// Recorder is an invoke.Runner that never spawns processes.
//
// Commands with no entry in Results succeed with empty output, so tests
// only script the calls they care about.
type Recorder struct {
	// Calls lists every command issued, in order.
	Calls []Call

	// Results maps a command line (Call.Line) to its scripted outcome.
	Results map[string]Result
}

// Run records the call and returns its scripted status.
func (r *Recorder) Run(_ context.Context, dir, name string, args ...string) int {
	return r.record(dir, name, args).Status
}

// RunLines records the call, feeds the scripted lines to fn, and returns
// the scripted status.
func (r *Recorder) RunLines(_ context.Context, dir string, fn func(line string), name string, args ...string) int {
	res := r.record(dir, name, args)
	for _, line := range res.Lines {
		fn(line)
	}
	return res.Status
}

// Capture records the call and returns its scripted output and status.
func (r *Recorder) Capture(_ context.Context, dir, name string, args ...string) (string, string, int) {
	res := r.record(dir, name, args)
	return res.Stdout, res.Stderr, res.Status
}

func (r *Recorder) record(dir, name string, args []string) Result {
	call := Call{Dir: dir, Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	return r.Results[call.Line()]
}

// CommandLines returns every recorded call in Line form, preserving order.
// Tests assert against this to check both composition and sequencing.
func (r *Recorder) CommandLines() []string {
	lines := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		lines[i] = c.Line()
	}
	return lines
}

// Issued reports whether any recorded call matches the given command line.
func (r *Recorder) Issued(line string) bool {
	for _, c := range r.Calls {
		if c.Line() == line {
			return true
		}
	}
	return false
}
