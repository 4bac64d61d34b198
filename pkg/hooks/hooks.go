// Package hooks composes and installs the process-wide reporting runtime:
// the theme, frame filters, panic section, span recorder, and settings
// that pkg/debrief consults when representing and rendering failures.
//
// Installation happens once. The first successful Install wins; later
// calls observe the installed runtime and succeed without changing it, so
// libraries and applications can both call Install defensively.
package hooks

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/debrief"
	"github.com/arthur-debert/debrief/pkg/logging"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// Builder accumulates runtime configuration. The zero value installs the
// defaults; every method returns the receiver for chaining.
type Builder struct {
	explicitTheme   *theme.Theme
	themeName       string
	settings        *config.Settings
	panicSection    *debrief.Section
	displayEnv      *bool
	displayLocation *bool
	captureSpans    *bool
	maxFrames       *int
	filters         []stacktrace.FilterFunc
	recorder        spantrace.Recorder
	logger          *zerolog.Logger
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Theme uses t verbatim, bypassing terminal detection.
func (b *Builder) Theme(t theme.Theme) *Builder {
	b.explicitTheme = &t
	return b
}

// ThemeNamed selects a preset by name. Install fails on unknown names.
func (b *Builder) ThemeNamed(name string) *Builder {
	b.themeName = name
	return b
}

// Settings replaces the default settings wholesale. Individual overrides
// set through the builder still apply on top.
func (b *Builder) Settings(s config.Settings) *Builder {
	b.settings = &s
	return b
}

// PanicSection appends an extra section to every panic report. A
// *debrief.Section is used as-is; any other value becomes a header-only
// section.
func (b *Builder) PanicSection(v any) *Builder {
	if s, ok := v.(*debrief.Section); ok {
		b.panicSection = s
		return b
	}
	b.panicSection = debrief.NewSection(v)
	return b
}

// DisplayEnvSection controls the environment-hint block in reports.
func (b *Builder) DisplayEnvSection(on bool) *Builder {
	b.displayEnv = &on
	return b
}

// DisplayLocationSection controls the "Location:" section in panic
// reports.
func (b *Builder) DisplayLocationSection(on bool) *Builder {
	b.displayLocation = &on
	return b
}

// FrameFilter adds filters on top of the default set.
func (b *Builder) FrameFilter(filters ...stacktrace.FilterFunc) *Builder {
	b.filters = append(b.filters, filters...)
	return b
}

// CaptureSpans controls whether span capture is attempted for new
// reports.
func (b *Builder) CaptureSpans(on bool) *Builder {
	b.captureSpans = &on
	return b
}

// SpanRecorder installs r as the process recorder. Without one, reports
// mark their span trace unsupported.
func (b *Builder) SpanRecorder(r spantrace.Recorder) *Builder {
	b.recorder = r
	return b
}

// MaxFrames bounds stack capture depth.
func (b *Builder) MaxFrames(n int) *Builder {
	b.maxFrames = &n
	return b
}

// Logger routes this library's internal logging to l.
func (b *Builder) Logger(l zerolog.Logger) *Builder {
	b.logger = &l
	return b
}

// Install builds the runtime and installs it process-wide. The first
// successful call wins; when a runtime is already installed the call is a
// no-op that returns nil. The only failure is an unknown theme name.
func (b *Builder) Install() error {
	settings := config.Default()
	if b.settings != nil {
		settings = *b.settings
	}
	if b.displayEnv != nil {
		settings.EnvSection = *b.displayEnv
	}
	if b.displayLocation != nil {
		settings.LocationSection = *b.displayLocation
	}
	if b.captureSpans != nil {
		settings.Spans = *b.captureSpans
	}
	if b.maxFrames != nil {
		settings.MaxFrames = *b.maxFrames
	}

	th, err := b.resolveTheme(settings)
	if err != nil {
		return err
	}

	rt := &debrief.Runtime{
		Theme:        th,
		Filters:      append(stacktrace.DefaultFilters(), b.filters...),
		PanicSection: b.panicSection,
		Settings:     settings,
	}

	if !debrief.SetRuntime(rt) {
		return nil
	}

	if b.logger != nil {
		logging.SetLogger(*b.logger)
	}
	if b.recorder != nil {
		spantrace.SetRecorder(b.recorder)
	}

	lg := logging.GetLogger("hooks")
	lg.Debug().
		Str("theme", b.themeName).
		Bool("spans", settings.Spans).
		Msg("reporting runtime installed")
	return nil
}

func (b *Builder) resolveTheme(settings config.Settings) (theme.Theme, error) {
	if b.explicitTheme != nil {
		return *b.explicitTheme, nil
	}
	if b.themeName != "" {
		t, ok := theme.ByName(b.themeName)
		if !ok {
			return theme.Theme{}, fmt.Errorf("unknown theme %q", b.themeName)
		}
		return t, nil
	}
	return theme.Resolve(settings.Theme), nil
}

// Install installs the default runtime.
func Install() error {
	return NewBuilder().Install()
}
