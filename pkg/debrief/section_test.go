package debrief

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSectionDefaults(t *testing.T) {
	s := NewSection("Extra:")
	assert.Equal(t, PlaceAfterMessages, s.placement)
	assert.False(t, s.hasBody)
}

func TestWithBodyKeepsPlacement(t *testing.T) {
	s := NewSection("See also:").Place(PlaceAfterDiagnostics).WithBody("docs/x.md")
	assert.Equal(t, PlaceAfterDiagnostics, s.placement)
	assert.True(t, s.hasBody)
	assert.Equal(t, "docs/x.md", s.body)
}

func TestSkipIfEvaluatesImmediately(t *testing.T) {
	t.Run("true suppresses", func(t *testing.T) {
		calls := 0
		s := NewSection("X:").SkipIf(func() bool {
			calls++
			return true
		})
		assert.Equal(t, 1, calls)
		assert.Equal(t, PlaceSuppressed, s.placement)
	})

	t.Run("false leaves placement alone", func(t *testing.T) {
		s := NewSection("X:").SkipIf(func() bool { return false })
		assert.Equal(t, PlaceAfterMessages, s.placement)
	})

	t.Run("predicate state is read once at build time", func(t *testing.T) {
		noisy := true
		s := NewSection("X:").SkipIf(func() bool { return !noisy })
		noisy = false
		assert.Equal(t, PlaceAfterMessages, s.placement)
	})

	t.Run("nil predicate is a no-op", func(t *testing.T) {
		s := NewSection("X:").SkipIf(nil)
		assert.Equal(t, PlaceAfterMessages, s.placement)
	})
}

func TestSuppressedSectionNeverAttaches(t *testing.T) {
	pinEnv(t)
	installTestRuntime(t, plainRuntime())

	r := New("boom")
	before := len(r.store.sections)
	r.Section(NewSection("X:").SkipIf(func() bool { return true }))
	assert.Equal(t, before, len(r.store.sections))

	r.Section(NewSection("X:").Place(PlaceSuppressed))
	assert.Equal(t, before, len(r.store.sections))
}

func TestNilSectionNeverAttaches(t *testing.T) {
	pinEnv(t)
	installTestRuntime(t, plainRuntime())

	r := New("boom")
	before := len(r.store.sections)
	r.Section(nil)
	assert.Equal(t, before, len(r.store.sections))
}
