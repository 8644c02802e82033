package style

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

var (
	labelStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	valueStyle = pterm.NewStyle(pterm.FgLightWhite)
)

// Printer writes "label: value" status lines.
type Printer struct {
	out  io.Writer
	mode Mode
}

// NewPrinter writes to out, styling only in ModeTerminal.
func NewPrinter(out io.Writer, mode Mode) *Printer {
	return &Printer{out: out, mode: mode}
}

// Status prints one status line.
func (p *Printer) Status(label string, value interface{}) {
	fmt.Fprintln(p.out, p.StatusLine(label, value))
}

// StatusLine renders a status line without printing it.
func (p *Printer) StatusLine(label string, value interface{}) string {
	if p.mode != ModeTerminal {
		return fmt.Sprintf("%s: %v", label, value)
	}
	return labelStyle.Sprint(label+":") + " " + valueStyle.Sprint(fmt.Sprint(value))
}

// Block prints pre-rendered text followed by a newline.
func (p *Printer) Block(text string) {
	fmt.Fprintln(p.out, text)
}
