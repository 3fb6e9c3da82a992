package topics

import (
	"io"

	"github.com/muesli/termenv"
)

// Renderer formats topic content for display.
type Renderer interface {
	// Render takes raw content and its file extension and returns the
	// text to print.
	Render(content string, format string) string
}

// PlainRenderer prints content unchanged.
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// ForOutput picks the glamour renderer when w is a color terminal and the
// plain renderer otherwise.
func ForOutput(w io.Writer) Renderer {
	if termenv.NewOutput(w).Profile == termenv.Ascii {
		return &PlainRenderer{}
	}
	return NewGlamourRenderer()
}
