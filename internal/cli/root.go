// Package cli implements the cobra-based CLI for vrdev.
//
// The root command is the workhorse: its arguments are an optional build
// configuration followed by one or more dev-cycle commands, dispatched
// through internal/runner. The clone subcommand (clone.go) lives beside
// it for stamping out new projects from the template.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/amwatson/vrdev/internal/config"
	"github.com/amwatson/vrdev/internal/invoke"
	"github.com/amwatson/vrdev/internal/model"
	"github.com/amwatson/vrdev/internal/runner"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// verbose enables debug-level logging, including the command line of
	// every child process before it runs.
	verbose bool

	// configPath overrides the project settings file. When empty, the
	// working directory is searched for vrdev.jsonc or vrdev.yaml.
	configPath string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a conventional subcommand layout, the root command runs the
// dev-cycle commands itself: `vrdev debug build install` is the whole
// grammar, so the arguments are taken as-is and resolved against the
// command registry.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vrdev [debug | profile | release] <commands...>",
		Short: "Dev-cycle driver for the VR template project",
		Long: `vrdev wraps the Gradle and adb invocations of the VR template project's
edit-compile-run cycle into short commands.

An optional leading build configuration (debug, profile, or release)
selects the Gradle variant; it defaults to profile. Every argument after
it is a command, executed left to right and stopping at the first
failure.

Examples:
  vrdev build
  vrdev debug clean build install start logcat
  vrdev release build
  vrdev devcycle`,

		// The argument grammar is config-then-commands, not subcommands;
		// validation happens against the command registry in runCommands.
		Args: cobra.ArbitraryArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves in Execute.
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands(cmd, args)
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Project settings file (default: vrdev.jsonc or vrdev.yaml in the working directory)")

	// Replace cobra's generated help command so `vrdev help` prints the
	// same command reference the registry's help handler does.
	rootCmd.SetHelpCommand(&cobra.Command{
		Use:   "help",
		Short: "Show this help text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), runner.Reference())
			return nil
		},
	})

	rootCmd.AddCommand(NewCloneCommand())

	return rootCmd
}

// runCommands resolves the build configuration, loads the project
// settings, and dispatches the named commands.
func runCommands(cmd *cobra.Command, args []string) error {
	// Bare `vrdev` is a help request, not an error.
	if len(args) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), runner.Reference())
		return nil
	}

	cfg, names := model.ResolveBuildConfig(args)
	if len(names) == 0 {
		// A configuration with nothing to run, e.g. `vrdev release`.
		fmt.Fprint(cmd.OutOrStdout(), runner.Reference())
		return model.NewCLIError(model.ExitNoCommands, "no commands supplied")
	}

	project, err := loadProject()
	if err != nil {
		return model.WrapCLIError(model.ExitNoCommands, "failed to load project settings", err)
	}

	logger := newLogger()
	engine := runner.New(project, ".", invoke.New(logger), cmd.OutOrStdout(), logger)
	return engine.Dispatch(cmd.Context(), cfg, names)
}

// loadProject reads the project settings from --config if given,
// otherwise from the working directory's settings file (or defaults when
// none exists).
func loadProject() (*config.Project, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	return config.Find(".")
}

// newLogger builds the stderr logger used for progress and diagnostics.
// Child-process output goes to stdout untouched; this logger only carries
// vrdev's own messages.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "vrdev",
		Level:  level,
	})
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitNoCommands))
	}
}

// printError writes "Error: <message>" to stderr, with the underlying
// cause appended when present.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}
