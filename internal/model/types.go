// Package model defines the domain types for the vrdev CLI.
//
// The types here are small and deliberately free of behavior that touches
// the outside world: build configurations, exit codes, and the error type
// the CLI layer translates into process exit codes. Everything that spawns
// processes lives in the packages that consume these types.
package model

import (
	"fmt"
	"regexp"
	"strings"
)

// BuildConfig selects which Gradle build variant the tool operates on.
// The three configurations mirror the Android project's build types:
//
//	debug   - debuggable, unoptimized
//	release - optimized, requires a signing configuration
//	profile - optimized with profiling instrumentation (the default)
type BuildConfig string

const (
	// ConfigDebug selects the debuggable, unoptimized build type.
	ConfigDebug BuildConfig = "debug"

	// ConfigRelease selects the optimized, signed build type. Install-style
	// commands are refused under this configuration until the project has
	// a signing configuration.
	ConfigRelease BuildConfig = "release"

	// ConfigProfile selects the optimized build with profiling left on.
	// This is the default when no configuration is named on the command line.
	ConfigProfile BuildConfig = "profile"
)

// String returns the lowercase configuration name, exactly as it appears
// on the command line and in Gradle task names such as "assembledebug".
func (c BuildConfig) String() string {
	return string(c)
}

// IsValid checks whether the BuildConfig value is one of the three
// predefined configurations.
func (c BuildConfig) IsValid() bool {
	switch c {
	case ConfigDebug, ConfigRelease, ConfigProfile:
		return true
	default:
		return false
	}
}

// Title returns the configuration name with its first letter upper-cased,
// for Gradle tasks that embed the name in camel case
// (externalNativeBuildDebug).
func (c BuildConfig) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ResolveBuildConfig splits a raw argument list into the active build
// configuration and the remaining command names. When the first argument
// is exactly one of the configuration names it is consumed; otherwise the
// default ConfigProfile applies and the list is returned unchanged.
//
// Matching is exact: no case folding, no prefix matching. "Debug" or "deb"
// is treated as the first command name, not as a configuration.
func ResolveBuildConfig(args []string) (BuildConfig, []string) {
	if len(args) > 0 {
		if cfg := BuildConfig(args[0]); cfg.IsValid() {
			return cfg, args[1:]
		}
	}
	return ConfigProfile, args
}

// applicationIDRegex validates Android application ids: two or more
// dot-separated segments, each starting with a letter and containing only
// letters, digits, and underscores.
var applicationIDRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

// ValidateApplicationID checks if the given string is a usable Android
// application id. The rules match what Gradle's applicationId accepts.
func ValidateApplicationID(id string) error {
	if id == "" {
		return fmt.Errorf("application id must not be empty")
	}
	if !applicationIDRegex.MatchString(id) {
		return fmt.Errorf("invalid application id %q: need two or more dot-separated segments of letters, digits, and underscores, each starting with a letter", id)
	}
	return nil
}

// ExitCode defines the CLI's exit codes. Each failure class gets a distinct
// code so scripts and CI systems can tell outcomes apart.
type ExitCode int

const (
	// ExitSuccess indicates every requested command completed successfully,
	// or the invocation only asked for help.
	ExitSuccess ExitCode = 0

	// ExitNoCommands indicates the invocation named a build configuration
	// but no commands, so only the usage reference was printed. General
	// errors such as an unreadable settings file also land here.
	ExitNoCommands ExitCode = 1

	// ExitCommandFailed indicates a command's underlying tool returned a
	// nonzero status; any commands queued after it were skipped.
	ExitCommandFailed ExitCode = 2

	// ExitUnknownCommand indicates an argument did not match any registered
	// command name.
	ExitUnknownCommand ExitCode = 3

	// ExitReleaseGated indicates install or devcycle was requested under the
	// release configuration, which the project cannot sign yet.
	ExitReleaseGated ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
