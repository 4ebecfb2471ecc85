// Package surface provides rendering surfaces for the tray engine. The
// engine treats a surface as a sink: it asks for the measured width every
// tick, checks liveness, and paints finished lines. The terminal surface
// writes to a TTY in place; the writer surface emits plain lines for
// one-shot output and prompt integration.
package surface

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Terminal paints the tray line onto the bottom of a live terminal,
// rewriting it in place on every tick.
type Terminal struct {
	out           *os.File
	output        *termenv.Output
	widthOverride int
}

// NewTerminal creates a surface over out (typically os.Stdout). The color
// profile is detected via termenv so styled lines degrade gracefully on
// limited terminals.
func NewTerminal(out *os.File) *Terminal {
	return &Terminal{
		out:    out,
		output: termenv.NewOutput(out),
	}
}

// WithWidthOverride forces a fixed width instead of measuring the terminal.
func (t *Terminal) WithWidthOverride(cols int) *Terminal {
	t.widthOverride = cols
	return t
}

// Width returns the surface width in columns, re-measured on every call so
// window resizes are picked up between ticks.
func (t *Terminal) Width() int {
	if t.widthOverride > 0 {
		return t.widthOverride
	}
	return measureWidth()
}

// Live reports whether the output is a real terminal that can be painted
// in place.
func (t *Terminal) Live() bool {
	return isatty.IsTerminal(t.out.Fd()) || isatty.IsCygwinTerminal(t.out.Fd())
}

// Paint clears the current line and writes the tray line in place, leaving
// the cursor at the start so the next paint overwrites it.
func (t *Terminal) Paint(line string) error {
	t.output.ClearLine()
	if _, err := fmt.Fprintf(t.out, "\r%s\r", line); err != nil {
		return fmt.Errorf("surface paint: %w", err)
	}
	return nil
}

// Profile returns the detected termenv color profile.
func (t *Terminal) Profile() termenv.Profile {
	return t.output.ColorProfile()
}

// Writer is a non-interactive surface that prints each line once. Used for
// one-shot mode and for embedding the tray line into another program's
// prompt. It is always live.
type Writer struct {
	w     io.Writer
	width int
}

// NewWriter creates a writer surface with a fixed width. A width of 0 or
// less means "measure the terminal anyway", which keeps one-shot output
// consistent with watch mode.
func NewWriter(w io.Writer, width int) *Writer {
	if width <= 0 {
		width = measureWidth()
	}
	return &Writer{w: w, width: width}
}

// Width returns the fixed width configured at construction.
func (s *Writer) Width() int { return s.width }

// Live always reports true; a plain writer can always accept a line.
func (s *Writer) Live() bool { return true }

// Paint writes the line followed by a newline.
func (s *Writer) Paint(line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("surface paint: %w", err)
	}
	return nil
}

// Buffer is an in-memory surface for hosts that own the terminal themselves.
// Watch mode renders through bubbletea's View, so the engine paints into a
// buffer and the host reads the line back out. The host pushes width changes
// in as it learns about them.
type Buffer struct {
	mu    sync.Mutex
	width int
	last  string
}

// NewBuffer creates a buffer surface with an initial width.
func NewBuffer(width int) *Buffer {
	if width <= 0 {
		width = measureWidth()
	}
	return &Buffer{width: width}
}

// SetWidth records a new width, typically from a resize event.
func (b *Buffer) SetWidth(cols int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cols > 0 {
		b.width = cols
	}
}

// Width returns the most recently recorded width.
func (b *Buffer) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

// Live always reports true; the buffer can always accept a line.
func (b *Buffer) Live() bool { return true }

// Paint stores the line for the host to read back.
func (b *Buffer) Paint(line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = line
	return nil
}

// Last returns the most recently painted line.
func (b *Buffer) Last() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}
