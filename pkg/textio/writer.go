// Package textio provides small io.Writer adapters used to assemble
// multi-block text reports: a header-gated writer that emits a separator
// only when a block produces output, and line-prefixing writers for
// uniform and numbered indentation.
package textio

import "io"

// HeaderWriter wraps an io.Writer and prints a header before the first
// non-empty chunk written in the current scope. A scope that never
// receives content never emits the header, so callers can stream a block
// without knowing up front whether it will be empty.
type HeaderWriter struct {
	w       io.Writer
	header  string
	started bool
}

// NewHeaderWriter returns a HeaderWriter that writes header to w before
// the first non-empty chunk of each scope.
func NewHeaderWriter(w io.Writer, header string) *HeaderWriter {
	return &HeaderWriter{w: w, header: header}
}

// Ready starts a fresh gated scope: the next non-empty write emits the
// header first. Returns the receiver so it can be used directly as the
// destination of a write.
func (h *HeaderWriter) Ready() *HeaderWriter {
	h.started = false
	return h
}

// InProgress marks the current scope as already started, suppressing the
// header for it. Used when the surrounding output began before the
// HeaderWriter took over the stream.
func (h *HeaderWriter) InProgress() *HeaderWriter {
	h.started = true
	return h
}

func (h *HeaderWriter) Write(p []byte) (int, error) {
	if !h.started && len(p) > 0 {
		if _, err := io.WriteString(h.w, h.header); err != nil {
			return 0, err
		}
		h.started = true
	}
	return h.w.Write(p)
}
