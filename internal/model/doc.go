// Package model defines the domain types and value objects for the
// vrdev CLI.
//
// This package contains pure data structures with no external dependencies:
// the build configuration enum, command-line argument resolution, and
// application id validation. Nothing here spawns processes or reads files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
