// Package styles renders command output with lipgloss.
package styles

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette using ANSI colors for broad terminal compatibility.
var (
	Primary = lipgloss.Color("4") // Blue
	Success = lipgloss.Color("2") // Green
	Error   = lipgloss.Color("1") // Red
)

// Printer writes lines to an output, styling them only when color is enabled
// and the output is a terminal that supports it.
type Printer struct {
	w       io.Writer
	color   bool
	title   lipgloss.Style
	result  lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		color:   color,
		title:   r.NewStyle().Bold(true).Foreground(Primary),
		result:  r.NewStyle().Foreground(Success),
		failure: r.NewStyle().Bold(true).Foreground(Error),
	}
}

// Title writes a banner line.
func (p *Printer) Title(s string) error {
	return p.line(p.title, s)
}

// Result writes a command result line.
func (p *Printer) Result(s string) error {
	return p.line(p.result, s)
}

// Failure writes an error line.
func (p *Printer) Failure(s string) error {
	return p.line(p.failure, s)
}

func (p *Printer) line(style lipgloss.Style, s string) error {
	if p.color {
		s = style.Render(s)
	}
	_, err := fmt.Fprintln(p.w, s)
	return err
}
