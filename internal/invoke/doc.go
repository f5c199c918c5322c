// Package invoke runs external developer tools (gradle, adb, git) as
// child processes for the vrdev CLI.
//
// All commands are spawned with a structured argv and no shell in between,
// so arguments never go through word splitting or glob expansion. The
// Runner interface is the seam the rest of the tool is tested through:
// production code uses Exec, tests substitute a scripted implementation.
//
// Exit statuses are plain ints, matching what the wrapped tools report.
// A command that cannot be spawned at all (missing binary, permission
// denied) is reported as status 1 after logging the underlying error.
package invoke
