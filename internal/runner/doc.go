// Package runner owns the command table and the dispatch engine for the
// vrdev CLI.
//
// Commands are registered in a fixed table at construction; nothing is
// discovered dynamically, so an argument either names a table entry or is
// an error. Dispatch executes the requested commands strictly in the
// order given and stops at the first failure, reporting the commands that
// were skipped. The release gate runs before anything executes: when the
// release configuration is active and any requested command is gated, the
// whole invocation is refused up front rather than failing halfway
// through a command list.
package runner
