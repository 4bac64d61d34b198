package debrief

import "errors"

// The aggregation API is the only mutation surface for a report's store.
// Every package-level function shares one contract: a nil error passes
// through untouched and lazy arguments are never evaluated; a non-nil
// error is promoted to a Report (creating the store and running capture if
// this is its first promotion) and the new context is appended. When err
// already carries a Report, the original error value comes back unchanged
// and the shared store is mutated in place, so chains built with
// fmt.Errorf("…: %w", …) keep their type.

// promote resolves err to the report whose store receives the context and
// the error value handed back to the caller.
func promote(err error) (*Report, error) {
	var existing *Report
	if errors.As(err, &existing) {
		return existing, err
	}
	r := &Report{cause: err, store: newStore(false)}
	return r, r
}

// AddSection appends a custom section to err's report.
func AddSection(err error, s *Section) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachSection(s)
	return out
}

// WithSection appends the section produced by fn, which runs only on the
// error path.
func WithSection(err error, fn func() *Section) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachSection(fn())
	return out
}

// Note appends a Note help entry.
func Note(err error, payload any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpNote, payload)
	return out
}

// WithNote appends a Note whose payload is produced only on the error path.
func WithNote(err error, fn func() any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpNote, fn())
	return out
}

// Warning appends a Warning help entry.
func Warning(err error, payload any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpWarning, payload)
	return out
}

// WithWarning appends a Warning whose payload is produced only on the
// error path.
func WithWarning(err error, fn func() any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpWarning, fn())
	return out
}

// Suggestion appends a Suggestion help entry.
func Suggestion(err error, payload any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpSuggestion, payload)
	return out
}

// WithSuggestion appends a Suggestion whose payload is produced only on
// the error path.
func WithSuggestion(err error, fn func() any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachHelp(helpSuggestion, fn())
	return out
}

// AddError appends an auxiliary error. It renders as its own chained
// block immediately after the primary messages, distinct from sections.
func AddError(err error, aux error) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachError(aux)
	return out
}

// WithError appends the auxiliary error produced by fn, which runs only on
// the error path.
func WithError(err error, fn func() error) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	r.attachError(fn())
	return out
}

// ContextFrom inspects source (a command, its output, or its exit status)
// and appends the sections summarizing it.
func ContextFrom(err error, source any) error {
	if err == nil {
		return nil
	}
	r, out := promote(err)
	for _, s := range contextSections(source) {
		r.attachSection(s)
	}
	return out
}

// Chainable mirrors. Each returns the receiver so context reads in call
// order: report.Note("…").Warning("…"). All are nil-safe.

// Section appends a custom section.
func (r *Report) Section(s *Section) *Report {
	if r == nil {
		return nil
	}
	r.attachSection(s)
	return r
}

// Note appends a Note help entry.
func (r *Report) Note(payload any) *Report {
	if r == nil {
		return nil
	}
	r.attachHelp(helpNote, payload)
	return r
}

// Warning appends a Warning help entry.
func (r *Report) Warning(payload any) *Report {
	if r == nil {
		return nil
	}
	r.attachHelp(helpWarning, payload)
	return r
}

// Suggestion appends a Suggestion help entry.
func (r *Report) Suggestion(payload any) *Report {
	if r == nil {
		return nil
	}
	r.attachHelp(helpSuggestion, payload)
	return r
}

// AddError appends an auxiliary error block.
func (r *Report) AddError(aux error) *Report {
	if r == nil {
		return nil
	}
	r.attachError(aux)
	return r
}

// ContextFrom appends the sections extracted from source.
func (r *Report) ContextFrom(source any) *Report {
	if r == nil {
		return nil
	}
	for _, s := range contextSections(source) {
		r.attachSection(s)
	}
	return r
}
