package ir

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Palette colors condition columns by variable index; conditions past the
// end and unconditional instructions use Fallback.
var Palette = []color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgBlue,
	color.FgHiYellow,
	color.FgMagenta,
	color.FgYellow,
	color.FgCyan,
	color.FgHiMagenta,
}

// Fallback colors conditions Palette has no entry for
var Fallback = color.FgHiBlack

// Printer provides pretty-printing for programs
type Printer struct {
	colored bool
	output  strings.Builder
}

// NewPrinter creates a new plain-text printer
func NewPrinter() *Printer {
	return &Printer{}
}

// NewColorPrinter creates a printer that colors conditions by Palette.
// fatih/color still drops the escapes when color.NoColor is set.
func NewColorPrinter() *Printer {
	return &Printer{colored: true}
}

// Print returns the plain listing of a program
func Print(program Program) string {
	p := NewPrinter()
	p.printProgram(program)
	return p.output.String()
}

// Sprint returns the listing of a program using the printer's settings
func (p *Printer) Sprint(program Program) string {
	p.output.Reset()
	p.printProgram(program)
	return p.output.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	p.output.WriteString(fmt.Sprintf(format, args...))
	p.output.WriteString("\n")
}

// printProgram prints one instruction per line, numbered from 0
func (p *Printer) printProgram(program Program) {
	if len(program) == 0 {
		p.writeLine("; empty program (always identity)")
		return
	}

	width := len(fmt.Sprintf("%d", len(program)-1))
	for i, inst := range program {
		p.writeLine("%*d  <%s, %s, %s>", width, i, p.condString(inst.Cond), inst.IfTrue, inst.IfFalse)
	}

	p.writeLine("; %d instructions, %d variables", len(program), len(program.Conditions()))
}

func (p *Printer) condString(cond Cond) string {
	text := cond.String()
	if !p.colored {
		return text
	}
	index, ok := cond.Var()
	if !ok || index >= len(Palette) {
		return color.New(Fallback).Sprint(text)
	}
	return color.New(Palette[index], color.Bold).Sprint(text)
}
