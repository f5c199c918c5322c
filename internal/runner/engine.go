package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amwatson/vrdev/internal/adb"
	"github.com/amwatson/vrdev/internal/config"
	"github.com/amwatson/vrdev/internal/gradle"
	"github.com/amwatson/vrdev/internal/invoke"
	"github.com/amwatson/vrdev/internal/logcat"
	"github.com/amwatson/vrdev/internal/model"
	"github.com/amwatson/vrdev/internal/submodule"
)

// Engine executes command lists against one project.
type Engine struct {
	gradle  *gradle.Runner
	device  *adb.Bridge
	guard   *submodule.Guard
	tags    []string
	printer *logcat.Printer

	out io.Writer
	log *log.Logger

	commands map[string]*Command
}

// New wires an Engine for the project rooted at dir. All child processes
// go through exec; user-facing text (the reference, the log stream) goes
// to out.
func New(project *config.Project, dir string, exec invoke.Runner, out io.Writer, logger *log.Logger) *Engine {
	e := &Engine{
		gradle:  gradle.NewRunner(project.Gradle, dir, exec),
		device:  adb.NewBridge(project.ADB, project.ApplicationID, project.Activity(), exec),
		guard:   submodule.NewGuard(dir, exec, logger),
		tags:    project.LogTags,
		printer: logcat.NewPrinter(out),
		out:     out,
		log:     logger,
	}
	e.register()
	return e
}

// register binds the command table to this engine's handlers.
func (e *Engine) register() {
	handlers := map[string]func(ctx context.Context, cfg model.BuildConfig) int{
		"build":     e.build,
		"clean":     e.clean,
		"install":   e.install,
		"uninstall": e.uninstall,
		"start":     e.start,
		"stop":      e.stop,
		"test":      e.test,
		"native":    e.native,
		"logcat":    e.logcat,
		"devcycle":  e.devcycle,
		"help":      e.help,
	}

	e.commands = make(map[string]*Command, len(commandSpecs))
	for _, s := range commandSpecs {
		e.commands[s.name] = &Command{
			Name:         s.name,
			Summary:      s.summary,
			ReleaseGated: s.gated,
			Run:          handlers[s.name],
		}
	}
}

// Dispatch runs the named commands in order under one build configuration.
//
// The release gate is checked before anything executes. After that, each
// name is resolved and run in turn: an unrecognized name stops the run
// with ExitUnknownCommand, and a failing command stops it with
// ExitCommandFailed after reporting what was skipped. A nil return means
// every command succeeded.
func (e *Engine) Dispatch(ctx context.Context, cfg model.BuildConfig, names []string) error {
	if err := e.checkReleaseGate(cfg, names); err != nil {
		return err
	}

	for i, name := range names {
		cmd, ok := e.commands[name]
		if !ok {
			fmt.Fprint(e.out, Reference())
			return model.NewCLIError(model.ExitUnknownCommand,
				fmt.Sprintf("unrecognized command %q", name))
		}

		if status := cmd.Run(ctx, cfg); status != 0 {
			if skipped := names[i+1:]; len(skipped) > 0 {
				e.log.Error("skipping remaining commands",
					"failed", name, "skipped", strings.Join(skipped, " "))
			}
			return model.NewCLIError(model.ExitCommandFailed,
				fmt.Sprintf("command %q failed with status %d", name, status))
		}
	}
	return nil
}

// checkReleaseGate refuses gated commands up front under the release
// configuration. Checking before dispatch means a gated command late in
// the list cannot waste a build that is doomed to stop at the gate.
// Names that match nothing are left for the dispatch loop, so commands
// ahead of a typo still run.
func (e *Engine) checkReleaseGate(cfg model.BuildConfig, names []string) error {
	if cfg != model.ConfigRelease {
		return nil
	}
	for _, name := range names {
		cmd, ok := e.commands[name]
		if !ok {
			continue
		}
		if cmd.ReleaseGated {
			return model.NewCLIError(model.ExitReleaseGated, fmt.Sprintf(
				"%s is not available for release builds without a signing config: configure signing in build.gradle.kts or use debug/profile builds",
				name))
		}
	}
	return nil
}

// Command handlers. Each returns the underlying tool's exit status;
// handlers that need project sources consult the submodule guard first
// and treat its failure as their own.

func (e *Engine) build(ctx context.Context, cfg model.BuildConfig) int {
	if status := e.guard.Ensure(ctx); status != 0 {
		return status
	}
	return e.gradle.Assemble(ctx, cfg)
}

func (e *Engine) install(ctx context.Context, cfg model.BuildConfig) int {
	if status := e.guard.Ensure(ctx); status != 0 {
		return status
	}
	return e.gradle.Install(ctx, cfg)
}

func (e *Engine) uninstall(ctx context.Context, cfg model.BuildConfig) int {
	return e.gradle.Uninstall(ctx, cfg)
}

func (e *Engine) clean(ctx context.Context, _ model.BuildConfig) int {
	return e.gradle.Clean(ctx)
}

func (e *Engine) test(ctx context.Context, _ model.BuildConfig) int {
	return e.gradle.ConnectedTest(ctx)
}

func (e *Engine) native(ctx context.Context, cfg model.BuildConfig) int {
	return e.gradle.NativeBuild(ctx, cfg)
}

func (e *Engine) start(ctx context.Context, _ model.BuildConfig) int {
	return e.device.Start(ctx)
}

func (e *Engine) stop(ctx context.Context, _ model.BuildConfig) int {
	return e.device.Stop(ctx)
}

// logcat clears the device buffer, then streams filtered lines through
// the colorizing printer until the user interrupts. A failed clear is
// already logged by the invoker and does not block the stream.
func (e *Engine) logcat(ctx context.Context, _ model.BuildConfig) int {
	e.device.ClearLog(ctx)
	e.log.Info("logcat started", "tags", strings.Join(e.tags, " "))
	return e.device.StreamLog(ctx, e.tags, e.printer.Print)
}

func (e *Engine) help(_ context.Context, _ model.BuildConfig) int {
	fmt.Fprint(e.out, Reference())
	return 0
}
