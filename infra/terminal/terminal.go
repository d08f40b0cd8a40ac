// Package terminal renders the form ports on a text terminal.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/kilianp07/bhp/core/form"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	// #60A5FA, the result colour of the web form.
	ansiBlue = "\033[38;2;96;165;250m"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Display prints rendered results, coloured when Color is set.
type Display struct {
	Out   io.Writer
	Color bool
}

// NewDisplay writes to w and enables colours when w is a terminal.
func NewDisplay(w io.Writer) *Display {
	return &Display{Out: w, Color: IsTerminal(w)}
}

// Render implements form.Display.
func (d *Display) Render(text string, style form.Style) {
	if d.Color {
		text = colorFor(style) + text + ansiReset
	}
	_, _ = fmt.Fprintln(d.Out, text)
}

func colorFor(style form.Style) string {
	if style == form.StyleError {
		return ansiRed
	}
	return ansiBlue
}

// Alerter prints warnings on its writer, usually stderr.
type Alerter struct {
	Out   io.Writer
	Color bool
}

// NewAlerter writes to w and enables colours when w is a terminal.
func NewAlerter(w io.Writer) *Alerter {
	return &Alerter{Out: w, Color: IsTerminal(w)}
}

// Alert implements form.Alerter.
func (a *Alerter) Alert(msg string) {
	if a.Color {
		msg = ansiRed + msg + ansiReset
	}
	_, _ = fmt.Fprintln(a.Out, msg)
}
