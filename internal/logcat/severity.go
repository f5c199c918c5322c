package logcat

import "strings"

// Severity is the priority class of one device log line.
type Severity int

const (
	// SeverityUnmatched marks lines without a recognizable priority
	// marker, such as logcat's "--------- beginning of main" separators.
	SeverityUnmatched Severity = iota

	// SeverityVerbose through SeverityFatal mirror Android's log
	// priorities V, D, I, W, E, F.
	SeverityVerbose
	SeverityDebug
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "verbose"
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unmatched"
	}
}

// markers fixes the scan order. A line carrying more than one marker
// takes the first match in this order, not the leftmost in the line.
var markers = []struct {
	marker   string
	severity Severity
}{
	{" V ", SeverityVerbose},
	{" D ", SeverityDebug},
	{" I ", SeverityInfo},
	{" W ", SeverityWarning},
	{" E ", SeverityError},
	{" F ", SeverityFatal},
}

// Classify determines the severity of a raw logcat line by searching for
// the space-delimited priority letter.
func Classify(line string) Severity {
	for _, m := range markers {
		if strings.Contains(line, m.marker) {
			return m.severity
		}
	}
	return SeverityUnmatched
}
