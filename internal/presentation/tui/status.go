// Package tui styles command output for terminals. Colours degrade to plain
// text when the writer is not a terminal.
package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Pass and Fail label the outcome of a check.
const (
	Pass = "PASS"
	Fail = "FAIL"
)

// Styler colours text for one writer.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the colour profile of w.
func NewStyler(w io.Writer) *Styler {
	return &Styler{out: termenv.NewOutput(w)}
}

// Status returns the coloured outcome label.
func (s *Styler) Status(ok bool) string {
	if ok {
		return s.out.String(Pass).Foreground(s.out.Color("#22c55e")).Bold().String()
	}
	return s.out.String(Fail).Foreground(s.out.Color("#ef4444")).Bold().String()
}

// Faint dims secondary text such as error details.
func (s *Styler) Faint(text string) string {
	return s.out.String(text).Faint().String()
}
