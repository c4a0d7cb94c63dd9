// Package view renders the HTML for the user-management screen as
// templ components, so pages and fragments can be served directly or
// patched over SSE.
package view

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// html is a small writer that remembers the first error, so components
// can emit markup without checking every write.
type html struct {
	w   io.Writer
	err error
}

// raw writes s as-is. Only use for trusted markup literals.
func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped for use in element content or attribute values.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// rawf writes formatted trusted markup. Dynamic values interpolated here
// must already be escaped.
func (h *html) rawf(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}
