package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// printer writes user-facing status lines. It is safe for concurrent use.
type printer struct {
	mu *sync.Mutex
	w  io.Writer

	step    lipgloss.Style
	success lipgloss.Style
	hint    lipgloss.Style
	code    lipgloss.Style
}

func newPrinter(w io.Writer) printer {
	r := lipgloss.NewRenderer(w)

	return printer{
		mu:      new(sync.Mutex),
		w:       w,
		step:    r.NewStyle().Foreground(lipgloss.Color("8")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		hint:    r.NewStyle().Bold(true),
		code:    r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (p printer) println(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w, s)
}

// Stepf reports an action about to be performed.
func (p printer) Stepf(format string, args ...any) {
	p.println(p.step.Render(fmt.Sprintf(format, args...)))
}

// Successf reports a completed action.
func (p printer) Successf(format string, args ...any) {
	p.println(p.success.Render(fmt.Sprintf(format, args...)))
}

// Next prints a heading followed by numbered or indented lines.
func (p printer) Next(heading string, lines ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.hint.Render(heading))
	fmt.Fprintln(p.w)

	for _, line := range lines {
		fmt.Fprintln(p.w, p.code.Render(line))
	}

	fmt.Fprintln(p.w)
}
