// Package ux styles the human-readable output of the driver. Styles are bound
// to the destination writer, so colour is dropped automatically when output
// is not a terminal.
package ux

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorTeal  = lipgloss.Color("#20B9B4")
	ColorSlate = lipgloss.Color("#2C4A54")
	ColorError = lipgloss.Color("#E74C3C")
)

// Printer writes section banners and result lines to one writer. It is safe
// for concurrent use; each Write reaches the destination whole.
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	err   lipgloss.Style
}

// NewPrinter binds the styles to w, so colour is dropped when w is not a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(ColorTeal),
		label: r.NewStyle().Foreground(ColorSlate),
		value: r.NewStyle(),
		err:   r.NewStyle().Bold(true).Foreground(ColorError),
	}
}

// Write sends b to the destination unstyled.
func (p *Printer) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.w.Write(b)
}

// Section prints a banner line: ━━━ title ━━━
func (p *Printer) Section(title string) {
	fmt.Fprintf(p, "\n%s\n", p.title.Render("━━━ "+title+" ━━━"))
}

// Result prints one labelled value, indented under the current section.
func (p *Printer) Result(label string, v any) {
	fmt.Fprintf(p, "  %s %s\n", p.label.Render(label+":"), p.value.Render(fmt.Sprint(v)))
}

// Line prints v indented, without a label.
func (p *Printer) Line(v any) {
	fmt.Fprintf(p, "  %s\n", p.value.Render(fmt.Sprint(v)))
}

// Error prints a failure line.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p, "  %s %v\n", p.err.Render("error:"), err)
}
