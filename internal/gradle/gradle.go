// Package gradle composes and runs the Gradle tasks behind the build,
// install, clean, test, and native commands.
//
// Task names embed the active build configuration. Install-style tasks
// take the lowercase form as typed ("installdebug"): Gradle matches task
// names case-insensitively on the command line, so the lowercase spelling
// resolves to installDebug. The native build task is the exception; its
// name is composed with the capitalized form ("externalNativeBuildDebug")
// because it is passed through to task lookup verbatim.
package gradle

import (
	"context"

	"github.com/amwatson/vrdev/internal/invoke"
	"github.com/amwatson/vrdev/internal/model"
)

// Runner invokes the project's Gradle wrapper.
type Runner struct {
	// Wrapper is the wrapper script path, usually "./gradlew" relative
	// to the project root.
	Wrapper string

	// Dir is the project root the wrapper runs in.
	Dir string

	exec invoke.Runner
}

// NewRunner creates a Runner that executes the given wrapper in dir.
func NewRunner(wrapper, dir string, exec invoke.Runner) *Runner {
	return &Runner{Wrapper: wrapper, Dir: dir, exec: exec}
}

// Assemble compiles the full application, Java and native code both,
// without touching the device.
func (r *Runner) Assemble(ctx context.Context, cfg model.BuildConfig) int {
	return r.run(ctx, "assemble"+cfg.String())
}

// Install builds if needed and installs the APK onto the connected device.
func (r *Runner) Install(ctx context.Context, cfg model.BuildConfig) int {
	return r.run(ctx, "install"+cfg.String())
}

// Uninstall removes the application from the connected device.
func (r *Runner) Uninstall(ctx context.Context, cfg model.BuildConfig) int {
	return r.run(ctx, "uninstall"+cfg.String())
}

// Clean wipes all Gradle build outputs.
func (r *Runner) Clean(ctx context.Context) int {
	return r.run(ctx, "clean")
}

// ConnectedTest runs the instrumented test suite on the connected device.
func (r *Runner) ConnectedTest(ctx context.Context) int {
	return r.run(ctx, "connectedAndroidTest")
}

// NativeBuild rebuilds only the native C++ code. Note the capitalized
// configuration name; see the package comment.
func (r *Runner) NativeBuild(ctx context.Context, cfg model.BuildConfig) int {
	return r.run(ctx, "externalNativeBuild"+cfg.Title())
}

func (r *Runner) run(ctx context.Context, task string) int {
	return r.exec.Run(ctx, r.Dir, r.Wrapper, task)
}
