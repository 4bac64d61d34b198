package stacktrace

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/debrief/pkg/textio"
	"github.com/arthur-debert/debrief/pkg/theme"
)

const traceHeader = "Stack trace (most recent call first):"

// snippetContext is the number of source lines shown on each side of the
// frame's line.
const snippetContext = 2

// Formatter renders a Trace. Hidden frames collapse into a counted marker
// while the visible frames keep their original indices, so a reader can
// tell where the elisions sit.
type Formatter struct {
	Theme      theme.Theme
	Filters    []FilterFunc
	ShowHidden bool

	// Snippets prints a small source window under each visible frame that
	// belongs to user code. Unreadable files degrade to no snippet.
	Snippets bool
}

// Format writes the rendered trace to w, one trailing newline per line.
// Write errors are ignored; callers render into a buffer.
func (f Formatter) Format(w io.Writer, t *Trace) {
	if t.Empty() {
		return
	}

	_, _ = io.WriteString(w, f.Theme.TraceHeader.Render(traceHeader))
	_, _ = io.WriteString(w, "\n")

	hidden := 0
	flush := func() {
		if hidden == 0 {
			return
		}
		label := fmt.Sprintf("(%d frames hidden)", hidden)
		if hidden == 1 {
			label = "(1 frame hidden)"
		}
		_, _ = fmt.Fprintf(w, "      %s\n", f.Theme.TraceHidden.Render(label))
		hidden = 0
	}

	for i, fr := range t.Frames {
		if !f.ShowHidden && f.hide(fr) {
			hidden++
			continue
		}
		flush()
		f.writeFrame(w, i, fr)
	}
	flush()
}

func (f Formatter) hide(fr Frame) bool {
	for _, filter := range f.Filters {
		if filter != nil && filter(fr) {
			return true
		}
	}
	return false
}

func (f Formatter) writeFrame(w io.Writer, idx int, fr Frame) {
	nameStyle := f.Theme.TraceFunction
	foreign := fr.IsDependency() || fr.IsRuntime()
	if foreign {
		nameStyle = f.Theme.TraceDependency
	}

	nw := textio.Numbered(w, idx)
	_, _ = fmt.Fprintf(nw, "%s\n", nameStyle.Render(fr.Function))
	location := fmt.Sprintf("at %s:%d", fr.File, fr.Line)
	_, _ = fmt.Fprintf(nw, "%s\n", f.Theme.TraceLocation.Render(location))

	if f.Snippets && !foreign {
		f.writeSnippet(nw, fr)
	}
}

func (f Formatter) writeSnippet(w io.Writer, fr Frame) {
	if fr.File == "" || fr.Line <= 0 {
		return
	}
	data, err := os.ReadFile(fr.File)
	if err != nil {
		return
	}

	lines := strings.Split(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if fr.Line > len(lines) {
		return
	}

	start := fr.Line - snippetContext
	if start < 1 {
		start = 1
	}
	end := fr.Line + snippetContext
	if end > len(lines) {
		end = len(lines)
	}
	width := len(strconv.Itoa(end))

	for n := start; n <= end; n++ {
		text := strings.TrimRight(lines[n-1], "\r")
		marker := "|"
		style := f.Theme.Snippet
		if n == fr.Line {
			marker = ">"
			style = f.Theme.SnippetArrow
		}
		rendered := style.Render(fmt.Sprintf("%*d %s %s", width, n, marker, text))
		_, _ = fmt.Fprintf(w, "  %s\n", rendered)
	}
}
