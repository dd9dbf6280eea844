// Package ui styles console output.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const noteIndent = 3

// Printer renders text for one output stream.
type Printer struct {
	wrap   int
	bold   lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
	good   lipgloss.Style
}

// NewPrinter returns a Printer for w. mode is "auto", "always" or "never";
// wrap is the width notes are wrapped at, 0 for none.
func NewPrinter(w io.Writer, mode string, wrap int) *Printer {
	r := lipgloss.NewRenderer(w)
	if ColorEnabled(mode, w) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		wrap:   wrap,
		bold:   r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("244")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("1")),
		good:   r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// ColorEnabled decides whether output to w gets ANSI styling.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) Bold(s string) string   { return p.bold.Render(s) }
func (p *Printer) Header(s string) string { return p.header.Render(s) }
func (p *Printer) Muted(s string) string  { return p.muted.Render(s) }
func (p *Printer) Warn(s string) string   { return p.warn.Render(s) }
func (p *Printer) Good(s string) string   { return p.good.Render(s) }

// Note formats a note as a list item, wrapped to the configured width.
func (p *Printer) Note(note string) string {
	if p.wrap <= noteIndent {
		return " - " + note
	}
	wrapped := wordwrap.String(note, p.wrap-noteIndent)
	indented := indent.String(wrapped, noteIndent)
	return " - " + strings.TrimPrefix(indented, strings.Repeat(" ", noteIndent))
}
