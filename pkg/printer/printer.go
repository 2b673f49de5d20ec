// Package printer is the CLI output layer. Every command renders through a
// Printer so machine mode can guarantee exactly one JSON value on stdout
// with all diagnostics on stderr.
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const wrapWidth = 80

// Styles holds the lipgloss styles used in human mode. With color disabled
// every style renders as plain text.
type Styles struct {
	Label   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Tip     lipgloss.Style
}

func newStyles(color bool) Styles {
	if !color {
		return Styles{}
	}
	return Styles{
		Label:   lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Tip:     lipgloss.NewStyle().Faint(true),
	}
}

// Printer renders command output in either human or machine mode.
type Printer struct {
	out     io.Writer
	errOut  io.Writer
	machine bool
	styles  Styles
}

// New creates a Printer. In machine mode out receives exactly one JSON
// value per invocation and nothing else; everything decorative goes to
// errOut.
func New(out, errOut io.Writer, machine, color bool) *Printer {
	return &Printer{
		out:     out,
		errOut:  errOut,
		machine: machine,
		styles:  newStyles(color && !machine),
	}
}

// Machine reports whether machine (JSON) mode is active.
func (p *Printer) Machine() bool {
	return p.machine
}

// Result emits the command result. Machine mode writes it as one JSON
// value; human mode callers format fields themselves and should not call
// this.
func (p *Printer) Result(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ErrorResult emits the machine-mode error object.
func (p *Printer) ErrorResult(code int, message string) {
	enc := json.NewEncoder(p.out)
	_ = enc.Encode(map[string]any{"error": true, "code": code, "message": message})
}

// Field prints one labeled line in human mode.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Label.Render(label+":"), value)
}

// Println writes a plain human-mode line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Successf prints a success line in human mode.
func (p *Printer) Successf(format string, a ...any) {
	fmt.Fprintf(p.out, "%s %s\n", p.styles.Success.Render("✓"), fmt.Sprintf(format, a...))
}

// Errorf prints a labeled error line. It targets stderr in both modes so it
// never contaminates machine output.
func (p *Printer) Errorf(format string, a ...any) {
	fmt.Fprintf(p.errOut, "%s %s\n", p.styles.Error.Render("Error:"), fmt.Sprintf(format, a...))
}

// Tipf prints an advisory line: the how-to-fix pairing for errors, or the
// migration hint on legacy aliases. Always stderr.
func (p *Printer) Tipf(format string, a ...any) {
	fmt.Fprintln(p.errOut, p.styles.Tip.Render(fmt.Sprintf(format, a...)))
}

// Progressf prints progress text. Stderr in machine mode, stdout otherwise.
func (p *Printer) Progressf(format string, a ...any) {
	w := p.out
	if p.machine {
		w = p.errOut
	}
	fmt.Fprintf(w, format+"\n", a...)
}

// Wrap word-wraps long prose for human display.
func (p *Printer) Wrap(text string) string {
	return wordwrap.String(strings.TrimSpace(text), wrapWidth)
}

// Out returns the result writer, for table rendering.
func (p *Printer) Out() io.Writer {
	return p.out
}
