package logcat

import (
	"fmt"
	"io"
)

// Printer writes device log lines to a terminal with severity coloring.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Print classifies one raw log line and writes it with its severity's
// color treatment. Lines come out exactly one per input line; the filter
// never drops or merges anything.
func (p *Printer) Print(line string) {
	fmt.Fprintln(p.out, styleFor(Classify(line)).Render(line))
}
