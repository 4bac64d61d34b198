package debrief

// Placement is the render-order class a Section belongs to. Classes render
// in a fixed relative order; within a class, sections keep insertion order.
type Placement int

const (
	// PlaceAfterMessages renders between the failure chain and the help
	// entries. This is the default.
	PlaceAfterMessages Placement = iota
	// PlaceAfterDiagnostics renders after the stack and span blocks,
	// footer-style.
	PlaceAfterDiagnostics
	// PlaceSuppressed drops the section entirely: it is never attached and
	// contributes nothing to the report.
	PlaceSuppressed
)

// Section is a header plus optional body block of supplementary context.
// Header and body hold any displayable value; their text is produced at
// render time. A Section is built once, attached to a report, and not
// mutated afterwards.
type Section struct {
	header    any
	body      any
	hasBody   bool
	placement Placement
}

// NewSection builds a header-only section placed after the failure
// messages. Construction never fails and performs no I/O.
func NewSection(header any) *Section {
	return &Section{header: header, placement: PlaceAfterMessages}
}

// WithBody attaches a body. Placement is unchanged.
func (s *Section) WithBody(body any) *Section {
	s.body = body
	s.hasBody = true
	return s
}

// SkipIf evaluates cond immediately and suppresses the section when it
// returns true. The predicate inspects state the caller closes over, not
// the section's own fields.
func (s *Section) SkipIf(cond func() bool) *Section {
	if cond != nil && cond() {
		s.placement = PlaceSuppressed
	}
	return s
}

// Place overrides the section's placement class.
func (s *Section) Place(p Placement) *Section {
	s.placement = p
	return s
}
