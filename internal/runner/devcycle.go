package runner

import (
	"context"

	"github.com/amwatson/vrdev/internal/model"
)

// devcycleSteps is the fixed edit-compile-run loop: build, push to the
// headset, launch, watch the log. Not user-configurable.
var devcycleSteps = []string{"build", "install", "start", "logcat"}

// devcycle runs the development-cycle steps in order, stopping at the
// first failure. The failed step is named; the composite itself reports
// plain failure (status 1) rather than forwarding the step's status,
// since the step already logged the detail.
func (e *Engine) devcycle(ctx context.Context, cfg model.BuildConfig) int {
	for _, name := range devcycleSteps {
		e.log.Info("running devcycle step", "step", name)
		if status := e.commands[name].Run(ctx, cfg); status != 0 {
			e.log.Error("devcycle aborted", "step", name, "status", status)
			return 1
		}
	}
	return 0
}
