package debrief

import (
	"errors"
	"fmt"
	"io"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
)

// panicMessage heads every report built from a recovered panic.
const panicMessage = "The application panicked (crashed)."

// store is the per-failure context container: the diagnostics captured
// when the failure was first represented as a Report, plus everything the
// aggregation API appended afterwards. Exactly one store exists per
// failure; wrapping shares it, so context is never lost or duplicated.
type store struct {
	stack    *stacktrace.Trace
	spans    *spantrace.Trace
	sections []*Section
	help     []helpEntry
	errs     []error
}

// Report is the canonical failure representation: an error whose chain
// carries an attached store of contextual sections, help entries and
// captured traces.
type Report struct {
	msg       string
	cause     error
	store     *store
	panicking bool
}

// newStore runs capture for a failure that is being represented for the
// first time. Stack capture is skipped at Minimal verbosity; span capture
// is attempted whenever enabled and records its own tri-state outcome.
func newStore(panicking bool) *store {
	rt := CurrentRuntime()
	st := &store{}
	if rt.verbosity(panicking) > config.VerbosityMinimal {
		st.stack = stacktrace.Capture(0, rt.Settings.MaxFrames)
	}
	if rt.Settings.SpanCaptureEnabled() {
		st.spans = spantrace.Capture()
	}
	return st
}

// New builds a report from a message.
func New(msg string) *Report {
	return &Report{msg: msg, store: newStore(false)}
}

// Newf builds a report from a format string.
func Newf(format string, args ...any) *Report {
	return &Report{msg: fmt.Sprintf(format, args...), store: newStore(false)}
}

// Wrap annotates err with msg. A report already present in err's chain
// keeps supplying the store; otherwise a store is created and capture
// runs now. Wrapping nil returns nil.
func Wrap(err error, msg string) *Report {
	if err == nil {
		return nil
	}
	return wrap(err, msg)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) *Report {
	if err == nil {
		return nil
	}
	return wrap(err, fmt.Sprintf(format, args...))
}

func wrap(err error, msg string) *Report {
	var existing *Report
	if errors.As(err, &existing) {
		return &Report{msg: msg, cause: err, store: existing.store, panicking: existing.panicking}
	}
	return &Report{msg: msg, cause: err, store: newStore(false)}
}

// From promotes err to a Report. When err already carries one in its
// chain, that report is returned so its store keeps accumulating context.
// From(nil) is nil.
func From(err error) *Report {
	if err == nil {
		return nil
	}
	var existing *Report
	if errors.As(err, &existing) {
		return existing
	}
	return &Report{cause: err, store: newStore(false)}
}

// NewPanic builds the report for a recovered panic value. st is the stack
// captured at the panic site; passing nil captures here, subject to the
// panic verbosity policy. The report opens with the panic message and
// carries a "Message:" section with the panic value, a "Location:" section
// with the panic site (when enabled), and the runtime's configured panic
// section.
func NewPanic(value any, st *stacktrace.Trace) *Report {
	rt := CurrentRuntime()

	r := &Report{msg: panicMessage, panicking: true, store: &store{}}
	if st == nil && rt.verbosity(true) > config.VerbosityMinimal {
		st = stacktrace.Capture(1, rt.Settings.MaxFrames)
	}
	r.store.stack = st
	if rt.Settings.SpanCaptureEnabled() {
		r.store.spans = spantrace.Capture()
	}

	r.store.sections = append(r.store.sections, NewSection("Message:").WithBody(value))
	if rt.Settings.LocationSection {
		r.store.sections = append(r.store.sections,
			NewSection("Location:").WithBody(panicLocation(st)))
	}
	if rt.PanicSection != nil {
		r.attachSection(rt.PanicSection)
	}
	return r
}

// panicLocation names the first frame that belongs to user code, or
// "<unknown>" when the trace has none.
func panicLocation(st *stacktrace.Trace) string {
	if st == nil {
		return "<unknown>"
	}
	filters := stacktrace.DefaultFilters()
frames:
	for _, fr := range st.Frames {
		for _, hide := range filters {
			if hide(fr) {
				continue frames
			}
		}
		return fmt.Sprintf("%s:%d", fr.File, fr.Line)
	}
	return "<unknown>"
}

// Error returns the conventional chain string. The full report is the
// %+v / Render surface.
func (r *Report) Error() string {
	switch {
	case r.cause == nil:
		return r.msg
	case r.msg == "":
		return r.cause.Error()
	default:
		return r.msg + ": " + r.cause.Error()
	}
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (r *Report) Unwrap() error {
	return r.cause
}

// Format renders the chain string for %s/%v/%q and the full report for
// %+v.
func (r *Report) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, r.report())
			return
		}
		_, _ = io.WriteString(s, r.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		_, _ = io.WriteString(s, r.Error())
	}
}

// Render writes the full report to w using the installed runtime. The
// only failure it can return is the sink's own write error.
func (r *Report) Render(w io.Writer) error {
	_, err := io.WriteString(w, r.report())
	return err
}

// RenderWith writes the full report to w using rt instead of the installed
// runtime, for callers that want per-render theming or settings.
func (r *Report) RenderWith(w io.Writer, rt *Runtime) error {
	_, err := io.WriteString(w, r.reportWith(rt))
	return err
}

func (r *Report) attachSection(s *Section) {
	if s == nil || s.placement == PlaceSuppressed {
		return
	}
	r.store.sections = append(r.store.sections, s)
}

func (r *Report) attachHelp(kind helpKind, payload any) {
	r.store.help = append(r.store.help, helpEntry{kind: kind, payload: payload})
}

func (r *Report) attachError(aux error) {
	if aux == nil {
		return
	}
	r.store.errs = append(r.store.errs, aux)
}
