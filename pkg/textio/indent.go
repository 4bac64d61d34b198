package textio

import (
	"bytes"
	"fmt"
	"io"
)

// PrefixWriter prefixes every line written through it. The first line gets
// the head prefix, every following line the rest prefix. Prefixes are
// written lazily when content for the line arrives, so a trailing newline
// does not produce a dangling prefix.
type PrefixWriter struct {
	w       io.Writer
	head    string
	rest    string
	started bool
	midline bool
}

// Indent returns a writer that prefixes every line with prefix.
func Indent(w io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{w: w, head: prefix, rest: prefix}
}

// Hang returns a writer with a hanging indent: head before the first line,
// rest before every later line.
func Hang(w io.Writer, head, rest string) *PrefixWriter {
	return &PrefixWriter{w: w, head: head, rest: rest}
}

// Numbered returns a writer for entry n of a numbered list: the first line
// is prefixed with the right-aligned number and a colon, continuation
// lines with matching whitespace.
func Numbered(w io.Writer, n int) *PrefixWriter {
	return Hang(w, fmt.Sprintf("%4d: ", n), "      ")
}

func (p *PrefixWriter) Write(b []byte) (int, error) {
	written := 0
	for len(b) > 0 {
		if !p.midline {
			prefix := p.rest
			if !p.started {
				prefix = p.head
				p.started = true
			}
			if _, err := io.WriteString(p.w, prefix); err != nil {
				return written, err
			}
			p.midline = true
		}
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			n, err := p.w.Write(b)
			return written + n, err
		}
		n, err := p.w.Write(b[:i+1])
		written += n
		if err != nil {
			return written, err
		}
		p.midline = false
		b = b[i+1:]
	}
	return written, nil
}
