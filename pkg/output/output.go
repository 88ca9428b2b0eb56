// Package output renders check results and summary text to the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"guiready/pkg/check"
)

const (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	bold   = "\033[1m"
	reset  = "\033[0m"
)

// Printer writes human-readable check output.
// Verbose widens what is shown (paths, values, versions) but never
// affects pass/fail.
type Printer struct {
	Out     io.Writer
	Verbose bool
	Color   bool
}

// New returns a Printer on stdout with color detection.
func New(verbose bool) *Printer {
	return &Printer{
		Out:     os.Stdout,
		Verbose: verbose,
		Color:   supportscolor.Stdout().SupportsColor,
	}
}

func (p *Printer) paint(code, s string) string {
	if !p.Color {
		return s
	}
	return code + s + reset
}

// Result outputs a check result with colored status.
// Details are shown in verbose mode and for failures; hints only for failures.
func (p *Printer) Result(r check.Result) {
	indent := "     "
	if r.OK() {
		fmt.Fprintf(p.Out, "%s %s\n", p.paint(green, "[OK]"), r.Name)
	} else {
		fmt.Fprintf(p.Out, "%s %s\n", p.paint(red, "[FAIL]"), r.Name)
		indent = "       "
	}
	if p.Verbose || !r.OK() {
		for _, d := range r.Details {
			fmt.Fprintf(p.Out, "%s%s\n", indent, d)
		}
	}
	if !r.OK() {
		for _, h := range r.Hints {
			fmt.Fprintf(p.Out, "%s%s\n", indent, p.paint(yellow, h))
		}
	}
}

// Headerf prints a bold header line.
func (p *Printer) Headerf(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.paint(bold, fmt.Sprintf(format, args...)))
}

// Successf prints a bold green summary line.
func (p *Printer) Successf(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.paint(green+bold, fmt.Sprintf(format, args...)))
}

// Failuref prints a bold red summary line.
func (p *Printer) Failuref(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.paint(red+bold, fmt.Sprintf(format, args...)))
}

// Warnf prints a yellow remediation label or hint.
func (p *Printer) Warnf(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.paint(yellow, fmt.Sprintf(format, args...)))
}

// Commandf prints a suggested command line in blue.
func (p *Printer) Commandf(format string, args ...interface{}) {
	fmt.Fprintln(p.Out, p.paint(blue, fmt.Sprintf(format, args...)))
}

// Plainf prints an uncolored line.
func (p *Printer) Plainf(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.Out)
}
