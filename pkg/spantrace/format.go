package spantrace

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/debrief/pkg/textio"
	"github.com/arthur-debert/debrief/pkg/theme"
)

const traceHeader = "Span trace (most recent span first):"

// Formatter renders a captured trace. Traces that are not Captured render
// nothing here; the report layer decides what to say about them.
type Formatter struct {
	Theme theme.Theme
}

// Format writes numbered spans to w. Write errors are ignored; callers
// render into a buffer.
func (f Formatter) Format(w io.Writer, t *Trace) {
	if t == nil || t.Status != Captured || len(t.Spans) == 0 {
		return
	}

	_, _ = io.WriteString(w, f.Theme.TraceHeader.Render(traceHeader))
	_, _ = io.WriteString(w, "\n")

	for i, span := range t.Spans {
		nw := textio.Numbered(w, i)

		var line strings.Builder
		line.WriteString(f.Theme.SpanName.Render(span.Name))
		for _, field := range span.Fields {
			line.WriteString(" ")
			line.WriteString(f.Theme.SpanField.Render(field.Key + "=" + field.Value))
		}
		_, _ = fmt.Fprintf(nw, "%s\n", line.String())

		if span.File != "" {
			location := fmt.Sprintf("at %s:%d", span.File, span.Line)
			_, _ = fmt.Fprintf(nw, "%s\n", f.Theme.TraceLocation.Render(location))
		}
	}
}
