package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/debrief/pkg/config"
	"github.com/arthur-debert/debrief/pkg/debrief"
	"github.com/arthur-debert/debrief/pkg/spantrace"
	"github.com/arthur-debert/debrief/pkg/stacktrace"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// The install slot is process-wide and first-install-wins, so the one test
// that claims it runs first and asserts everything about the installed
// runtime. Later tests rely on the slot being taken.

func TestInstallBuildsRuntime(t *testing.T) {
	collector := spantrace.NewCollector()
	err := NewBuilder().
		Theme(theme.Plain()).
		PanicSection("report bugs at example.com/issues").
		DisplayEnvSection(false).
		DisplayLocationSection(false).
		CaptureSpans(true).
		MaxFrames(17).
		FrameFilter(func(stacktrace.Frame) bool { return false }).
		SpanRecorder(collector).
		Install()
	require.NoError(t, err)

	rt := debrief.CurrentRuntime()
	require.NotNil(t, rt.PanicSection)
	assert.False(t, rt.Settings.EnvSection)
	assert.False(t, rt.Settings.LocationSection)
	assert.True(t, rt.Settings.Spans)
	assert.Equal(t, 17, rt.Settings.MaxFrames)
	assert.Len(t, rt.Filters, len(stacktrace.DefaultFilters())+1)

	t.Run("second install is a quiet no-op", func(t *testing.T) {
		require.NoError(t, NewBuilder().
			Theme(theme.Plain()).
			DisplayEnvSection(true).
			MaxFrames(99).
			Install())

		again := debrief.CurrentRuntime()
		assert.Same(t, rt, again)
		assert.Equal(t, 17, again.Settings.MaxFrames)
	})

	t.Run("default install is also a no-op", func(t *testing.T) {
		require.NoError(t, Install())
		assert.Same(t, rt, debrief.CurrentRuntime())
	})
}

func TestUnknownThemeName(t *testing.T) {
	err := NewBuilder().ThemeNamed("no-such-theme").Install()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "no-such-theme"`)
}

func TestPanicSectionAcceptsSection(t *testing.T) {
	s := debrief.NewSection("custom header").WithBody("custom body")
	b := NewBuilder().PanicSection(s)
	assert.Same(t, s, b.panicSection)
}

func TestPanicSectionWrapsPlainValue(t *testing.T) {
	b := NewBuilder().PanicSection("just text")
	assert.NotNil(t, b.panicSection)
}

func TestResolveTheme(t *testing.T) {
	settings := config.Default()

	t.Run("explicit theme wins over name", func(t *testing.T) {
		b := NewBuilder().Theme(theme.Plain()).ThemeNamed("dark")
		th, err := b.resolveTheme(settings)
		require.NoError(t, err)
		assert.False(t, th.ErrorMessage.GetBold())
	})

	t.Run("named preset resolves", func(t *testing.T) {
		b := NewBuilder().ThemeNamed("dark")
		th, err := b.resolveTheme(settings)
		require.NoError(t, err)
		assert.True(t, th.ErrorMessage.GetBold())
	})

	t.Run("unknown name errors", func(t *testing.T) {
		b := NewBuilder().ThemeNamed("nope")
		_, err := b.resolveTheme(settings)
		assert.Error(t, err)
	})

	t.Run("settings theme is the fallback", func(t *testing.T) {
		s := settings
		s.Theme = "dark"
		th, err := NewBuilder().resolveTheme(s)
		require.NoError(t, err)
		assert.True(t, th.ErrorMessage.GetBold())
	})
}
