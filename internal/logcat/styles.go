package logcat

import "github.com/charmbracelet/lipgloss"

// Color palette for log severities, picked for dark terminal backgrounds.
// The scheme follows the classic logcat viewers: cool colors for chatter,
// warm colors for trouble.
const (
	// colorVerbose is light gray, keeping verbose chatter readable but
	// visually de-emphasized.
	colorVerbose = lipgloss.Color("#9CA3AF")

	// colorDebug is blue.
	colorDebug = lipgloss.Color("#3B82F6")

	// colorInfo is green.
	colorInfo = lipgloss.Color("#10B981")

	// colorWarning is amber.
	colorWarning = lipgloss.Color("#F59E0B")

	// colorError is red.
	colorError = lipgloss.Color("#EF4444")
)

var (
	verboseStyle = lipgloss.NewStyle().
			Foreground(colorVerbose)

	debugStyle = lipgloss.NewStyle().
			Foreground(colorDebug)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorInfo)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	// fatalStyle inverts the error colors so crashes stand out even
	// while the stream scrolls.
	fatalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorError)

	// unmatchedStyle leaves separator and banner lines untouched.
	unmatchedStyle = lipgloss.NewStyle()
)

// styleFor maps a severity to its render style.
func styleFor(s Severity) lipgloss.Style {
	switch s {
	case SeverityVerbose:
		return verboseStyle
	case SeverityDebug:
		return debugStyle
	case SeverityInfo:
		return infoStyle
	case SeverityWarning:
		return warningStyle
	case SeverityError:
		return errorStyle
	case SeverityFatal:
		return fatalStyle
	default:
		return unmatchedStyle
	}
}
