// Package adb drives the Android Debug Bridge: launching and stopping
// the application on the connected device and streaming its log.
package adb

import (
	"context"

	"github.com/amwatson/vrdev/internal/invoke"
)

// Bridge issues adb commands for one application.
type Bridge struct {
	// Path is the adb binary, resolved through PATH when not absolute.
	Path string

	// ApplicationID is the installed package to operate on.
	ApplicationID string

	// LaunchActivity is the fully qualified activity started by Start.
	LaunchActivity string

	exec invoke.Runner
}

// NewBridge creates a Bridge for the given application.
func NewBridge(path, applicationID, launchActivity string, exec invoke.Runner) *Bridge {
	return &Bridge{
		Path:           path,
		ApplicationID:  applicationID,
		LaunchActivity: launchActivity,
		exec:           exec,
	}
}

// Start launches the application's main activity on the device via the
// activity manager. The component is "<applicationID>/<launchActivity>".
func (b *Bridge) Start(ctx context.Context) int {
	return b.shell(ctx, "am", "start", b.ApplicationID+"/"+b.LaunchActivity)
}

// Stop force-stops the application on the device.
func (b *Bridge) Stop(ctx context.Context) int {
	return b.shell(ctx, "am", "force-stop", b.ApplicationID)
}

// ClearLog empties the device's log buffer so a following stream starts
// from the present.
func (b *Bridge) ClearLog(ctx context.Context) int {
	return b.shell(ctx, "logcat", "-c")
}

// StreamLog runs an unbounded logcat read restricted to the given tags,
// feeding each line to fn. It blocks until the stream ends, normally when
// the user interrupts it, and returns logcat's exit status.
//
// Each tag becomes its own "-s tag" filter pair; everything else on the
// device is silenced.
func (b *Bridge) StreamLog(ctx context.Context, tags []string, fn func(line string)) int {
	args := []string{"logcat"}
	for _, tag := range tags {
		args = append(args, "-s", tag)
	}
	return b.exec.RunLines(ctx, "", fn, b.Path, args...)
}

func (b *Bridge) shell(ctx context.Context, args ...string) int {
	return b.exec.Run(ctx, "", b.Path, append([]string{"shell"}, args...)...)
}
