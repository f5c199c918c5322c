package template

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/amwatson/vrdev/internal/invoke"
)

// Options describes one clone-and-rename run.
type Options struct {
	// Source is the template checkout to clone from: a local path or
	// anything else git clone accepts.
	Source string

	// DestRoot is the directory the new project is created under; the
	// clone lands in DestRoot/AppName.
	DestRoot string

	// AppName is the new project's CamelCase name.
	AppName string

	// PackageID is the new Android application id.
	PackageID string

	// OldPackageID, OldAppName, and OldAppTitle are the identity being
	// replaced, normally taken from the source project's settings.
	OldPackageID string
	OldAppName   string
	OldAppTitle  string
}

// Cloner clones the template project and rewrites its identity.
type Cloner struct {
	exec invoke.Runner
	log  *log.Logger
}

// NewCloner creates a Cloner.
func NewCloner(exec invoke.Runner, logger *log.Logger) *Cloner {
	return &Cloner{exec: exec, log: logger}
}

// Clone creates the renamed project and commits the rewrite in the new
// clone. Returns the new project's path.
//
// The clone carries full history and submodules (--recurse-submodules),
// so the new project builds immediately without a separate submodule
// update.
func (c *Cloner) Clone(ctx context.Context, opts Options) (string, error) {
	dest := filepath.Join(opts.DestRoot, opts.AppName)

	if status := c.exec.Run(ctx, "", "git", "clone", "--recurse-submodules", opts.Source, dest); status != 0 {
		return "", fmt.Errorf("git clone failed with status %d", status)
	}

	rules := replacements(opts.OldPackageID, opts.PackageID, opts.OldAppName, opts.AppName, opts.OldAppTitle)
	changed, err := rewriteTree(dest, rules)
	if err != nil {
		return "", err
	}
	c.log.Info("rewrote project identity", "files", changed)

	if err := movePackageDir(dest, opts.OldPackageID, opts.PackageID); err != nil {
		return "", err
	}

	if status := c.exec.Run(ctx, dest, "git", "add", "."); status != 0 {
		return "", fmt.Errorf("git add failed with status %d", status)
	}
	message := fmt.Sprintf("Rename to %s and package %s", opts.AppName, opts.PackageID)
	if status := c.exec.Run(ctx, dest, "git", "commit", "-m", message); status != 0 {
		return "", fmt.Errorf("git commit failed with status %d", status)
	}

	return dest, nil
}
