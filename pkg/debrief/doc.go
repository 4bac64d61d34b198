/*
Package debrief aggregates context onto failures and renders them as
multi-part reports.

A failure becomes a Report either explicitly (New, Wrap, From) or the
first time an aggregation call touches it. At that moment the report gets
its context store and the diagnostics capture runs: a stack trace when the
verbosity policy asks for one, a span trace when recording is enabled.
Everything attached afterwards (sections, notes, warnings, suggestions,
auxiliary errors) appends to that one store in call order, no matter how
many times the error is wrapped on its way up.

	if err := run(); err != nil {
		err = debrief.Wrap(err, "starting the sync").
			Note("the daemon must be running").
			Suggestion("try `debrief-demo config-init` first")
		return err
	}

The aggregation functions are no-ops on nil errors, and their With…
variants never evaluate their closures on the success path:

	return debrief.WithSection(doWork(), func() *debrief.Section {
		return debrief.NewSection("Workspace:").WithBody(describeWorkspace())
	})

Error() and %v stay conventional one-line chain strings; the full report
is the %+v verb and Render. Output layout and theming come from the
installed runtime (see pkg/hooks), defaulting to terminal detection and
the standard frame filters.
*/
package debrief
