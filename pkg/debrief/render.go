package debrief

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
	"github.com/arthur-debert/debrief/pkg/textio"
	"github.com/arthur-debert/debrief/pkg/theme"
)

const (
	hintStackOmitted    = "Stack trace omitted."
	hintEnableStack     = "Run with DEBRIEF_TRACE=1 environment variable to display it."
	hintShowHidden      = "Run with DEBRIEF_SHOW_HIDDEN=1 environment variable to disable frame filtering."
	hintFullSnippets    = "Run with DEBRIEF_TRACE=full to include source snippets."
	warnSpanUnsupported = "Warning: span trace capture is unsupported."
	hintSpanRecorder    = "Install a span recorder (hooks.Builder.SpanRecorder) before creating reports."
)

// report renders the full multi-part text against the installed runtime.
func (r *Report) report() string {
	return r.reportWith(CurrentRuntime())
}

// reportWith renders the full multi-part text. The layout is a sequence of
// blocks separated by one blank line: primary message, causes, auxiliary
// error chains, sections placed after the messages, help entries, the
// diagnostics blocks, and finally footer sections. Block separation comes
// from a header-gated writer whose header is "\n\n", so a block that
// writes nothing costs nothing.
func (r *Report) reportWith(rt *Runtime) string {
	th := rt.Theme
	verb := rt.verbosity(r.panicking)

	var b strings.Builder

	msgs := chainMessages(r)
	if msgs[0] != "" {
		b.WriteString(th.ErrorMessage.Render(msgs[0]))
	}

	sep := textio.NewHeaderWriter(&b, "\n\n")

	if len(msgs) > 1 {
		writeCauses(sep.Ready(), th, msgs[1:])
	}
	for _, aux := range r.store.errs {
		writeAuxError(sep.Ready(), th, aux)
	}
	for _, s := range r.store.sections {
		if s.placement == PlaceAfterMessages {
			writeSection(sep.Ready(), th, s)
		}
	}
	writeHelp(sep.Ready(), th, r.store.help)
	r.writeDiagnostics(sep, rt, verb)
	for _, s := range r.store.sections {
		if s.placement == PlaceAfterDiagnostics {
			writeSection(sep.Ready(), th, s)
		}
	}

	return b.String()
}

// chainMessages walks the cause chain and returns each link's own message:
// the conventional ": cause" suffix is stripped, and links that add no
// message of their own are skipped.
func chainMessages(err error) []string {
	var msgs []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		cur := e.Error()
		if next := errors.Unwrap(e); next != nil {
			rest := next.Error()
			if trimmed, ok := strings.CutSuffix(cur, ": "+rest); ok {
				cur = trimmed
			} else if cur == rest {
				continue
			}
		}
		msgs = append(msgs, cur)
	}
	return msgs
}

// writeCauses renders the "Caused by:" block. Two or more causes are
// numbered; a single cause is indented uniformly.
func writeCauses(w io.Writer, th theme.Theme, causes []string) {
	_, _ = io.WriteString(w, th.CauseLabel.Render("Caused by:"))
	if len(causes) == 1 {
		_, _ = io.WriteString(w, "\n")
		_, _ = io.WriteString(textio.Indent(w, "    "), causes[0])
		return
	}
	for i, cause := range causes {
		_, _ = io.WriteString(w, "\n")
		_, _ = io.WriteString(textio.Numbered(w, i), cause)
	}
}

// writeAuxError renders one auxiliary error block: an "Error:" header and
// the error's own chain, always numbered.
func writeAuxError(w io.Writer, th theme.Theme, aux error) {
	_, _ = io.WriteString(w, th.CauseLabel.Render("Error:"))
	for i, msg := range chainMessages(aux) {
		_, _ = io.WriteString(w, "\n")
		_, _ = io.WriteString(textio.Numbered(w, i), msg)
	}
}

// writeSection renders one section. The header goes through its own gated
// writer, so a section whose trimmed body is empty emits nothing at all;
// header-only sections emit exactly when their header text is non-empty.
func writeSection(w io.Writer, th theme.Theme, s *Section) {
	header := display(s.header, th)

	if !s.hasBody {
		if header == "" {
			return
		}
		_, _ = io.WriteString(w, th.SectionHeader.Render(header))
		return
	}

	headerLine := "\n"
	if header != "" {
		headerLine = th.SectionHeader.Render(header) + "\n"
	}
	hw := textio.NewHeaderWriter(w, headerLine)
	body := strings.TrimRight(display(s.body, th), " \t\n")
	_, _ = io.WriteString(textio.Indent(hw, "   "), body)
}

// writeHelp renders the help entries newline-joined, with no blank lines
// inside the block.
func writeHelp(w io.Writer, th theme.Theme, entries []helpEntry) {
	for i, e := range entries {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		label := e.kind.style(th).Render(e.kind.label())
		_, _ = io.WriteString(w, label+": "+display(e.payload, th))
	}
}

// writeDiagnostics renders the stack block, the environment-hint block and
// the span block, each separated like any other block.
func (r *Report) writeDiagnostics(sep *textio.HeaderWriter, rt *Runtime, verb config.Verbosity) {
	th := rt.Theme

	stackShown := !r.store.stack.Empty()
	if stackShown {
		f := stacktrace.Formatter{
			Theme:      th,
			Filters:    rt.Filters,
			ShowHidden: rt.Settings.ShowHiddenFrames(),
			Snippets:   verb >= config.VerbosityFull,
		}
		writeTrimmed(sep.Ready(), func(w io.Writer) { f.Format(w, r.store.stack) })
	}

	if rt.Settings.EnvSection {
		var hints []string
		if stackShown {
			hints = append(hints, hintShowHidden)
		} else {
			hints = append(hints, hintStackOmitted, hintEnableStack)
		}
		if verb < config.VerbosityFull {
			hints = append(hints, hintFullSnippets)
		}

		w := sep.Ready()
		for i, hint := range hints {
			if i > 0 {
				_, _ = io.WriteString(w, "\n")
			}
			_, _ = io.WriteString(w, th.Hint.Render(hint))
		}
	}

	if r.store.spans != nil {
		switch r.store.spans.Status {
		case spantrace.Captured:
			f := spantrace.Formatter{Theme: th}
			writeTrimmed(sep.Ready(), func(w io.Writer) { f.Format(w, r.store.spans) })
		case spantrace.Unsupported:
			w := sep.Ready()
			_, _ = io.WriteString(w, th.WarningLabel.Render(warnSpanUnsupported))
			_, _ = io.WriteString(w, "\n")
			_, _ = io.WriteString(w, th.Hint.Render(hintSpanRecorder))
		}
	}
}

// writeTrimmed renders a line-oriented formatter into a scratch buffer and
// forwards it without the trailing newline, keeping block separation the
// gate's job.
func writeTrimmed(w io.Writer, render func(io.Writer)) {
	var buf bytes.Buffer
	render(&buf)
	_, _ = io.WriteString(w, strings.TrimRight(buf.String(), "\n"))
}
