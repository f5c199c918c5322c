// Package submodule keeps the project's git submodules initialized before
// build and install operations.
//
// The native engine dependencies live in submodules, so a fresh clone
// cannot compile until they are checked out. The Guard makes that
// invisible: commands that need sources consult it first, and it runs
// the one-time recursive update when anything is missing.
package submodule

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amwatson/vrdev/internal/invoke"
)

// Guard checks and repairs the submodule state of one repository.
type Guard struct {
	// Dir is the repository root the git commands run in.
	Dir string

	exec invoke.Runner
	log  *log.Logger
}

// NewGuard creates a Guard for the repository at dir.
func NewGuard(dir string, exec invoke.Runner, logger *log.Logger) *Guard {
	return &Guard{Dir: dir, exec: exec, log: logger}
}

// Ensure verifies every submodule is initialized, updating recursively
// when one is not. It returns 0 once the checkout is complete and a
// nonzero status when the state cannot be determined or repaired; callers
// treat that as the failure of the command that needed the sources.
func (g *Guard) Ensure(ctx context.Context) int {
	stdout, stderr, status := g.exec.Capture(ctx, g.Dir, "git", "submodule", "status")

	// Anything on stderr means the state query itself is unreliable
	// (not a git checkout, broken .gitmodules), so don't try to repair.
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		g.log.Error("submodule status check failed", "stderr", trimmed)
		if status != 0 {
			return status
		}
		return 1
	}
	if status != 0 {
		g.log.Error("submodule status check failed", "status", status)
		return status
	}

	if !anyUninitialized(stdout) {
		g.log.Debug("submodules are initialized")
		return 0
	}

	g.log.Info("submodule(s) not initialized, updating")
	if status := g.exec.Run(ctx, g.Dir, "git", "submodule", "update", "--init", "--recursive"); status != 0 {
		g.log.Error("submodule update failed", "status", status)
		return status
	}
	return 0
}

// anyUninitialized reports whether a `git submodule status` listing
// contains an uninitialized entry. Git prefixes those lines with "-";
// initialized entries start with a space or "+".
func anyUninitialized(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "-") {
			return true
		}
	}
	return false
}
