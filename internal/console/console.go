// Package console renders harness output: status lines and unified diffs
// of expected versus actual values.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// Printer writes colored status lines to a single destination.
type Printer struct {
	w       io.Writer
	info    *color.Color
	success *color.Color
	warning *color.Color
	errc    *color.Color
	added   *color.Color
	removed *color.Color
}

// New creates a Printer. When colored is false all output is plain.
func New(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:       w,
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		errc:    color.New(color.FgRed),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
	}
	if !colored {
		for _, c := range []*color.Color{p.info, p.success, p.warning, p.errc, p.added, p.removed} {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) Info(format string, a ...any) {
	p.info.Fprintf(p.w, format+"\n", a...)
}

func (p *Printer) Success(format string, a ...any) {
	p.success.Fprintf(p.w, format+"\n", a...)
}

func (p *Printer) Warning(format string, a ...any) {
	p.warning.Fprintf(p.w, format+"\n", a...)
}

func (p *Printer) Error(format string, a ...any) {
	p.errc.Fprintf(p.w, format+"\n", a...)
}

// Diff prints a unified diff from expected to actual, coloring additions
// and removals. Labels name the two sides in the header.
func (p *Printer) Diff(expectedLabel, actualLabel, expected, actual string) error {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: expectedLabel,
		ToFile:   actualLabel,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return fmt.Errorf("rendering diff: %w", err)
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+"):
			p.added.Fprint(p.w, line)
		case strings.HasPrefix(line, "-"):
			p.removed.Fprint(p.w, line)
		default:
			fmt.Fprint(p.w, line)
		}
	}
	return nil
}
