package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/amwatson/vrdev/internal/model"
)

// Command is one entry in the command table.
type Command struct {
	// Name is the argument that selects this command.
	Name string

	// Summary is the one-line description shown in the reference.
	Summary string

	// ReleaseGated marks commands refused under the release configuration
	// until the project has a signing configuration.
	ReleaseGated bool

	// Run executes the command for the active build configuration and
	// returns the underlying tool's exit status (0 means success).
	Run func(ctx context.Context, cfg model.BuildConfig) int
}

// commandSpecs fixes the table: names, summaries, gating, and the order
// the reference lists them in. Handlers are bound when an Engine is
// constructed.
var commandSpecs = []struct {
	name    string
	summary string
	gated   bool
}{
	{"build", "Compile the full app (Java + native)", false},
	{"clean", "Wipe all Gradle build outputs", false},
	{"install", "Install APK to device (requires build first)", true},
	{"uninstall", "Uninstall the APK from device", false},
	{"start", "Launch the VR app on device", false},
	{"stop", "Force-stop the app", false},
	{"test", "Run connected Android tests (if any)", false},
	{"native", "Rebuild just the native C++/JNI code", false},
	{"logcat", "Show filtered device logs (configured tags only)", false},
	{"devcycle", "Full build → install → start → logcat", true},
	{"help", "Show this help text", false},
}

// Reference renders the command table with usage and an example. It is
// shown by the help command, when no commands are supplied, and after an
// unrecognized command name.
func Reference() string {
	var b strings.Builder
	b.WriteString("Available commands:\n\n")
	for _, s := range commandSpecs {
		fmt.Fprintf(&b, "  %-11s → %s\n", s.name, s.summary)
	}
	b.WriteString("\nUsage:\n")
	b.WriteString("  vrdev [debug | profile | release] <commands...>\n")
	b.WriteString("Example:\n")
	b.WriteString("  vrdev debug clean build install start logcat\n")
	return b.String()
}
