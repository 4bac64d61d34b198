package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDebriefEnv(t *testing.T) {
	t.Helper()
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "DEBRIEF_") {
			key, _, _ := strings.Cut(e, "=")
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "auto", s.Theme)
	assert.True(t, s.Spans)
	assert.True(t, s.EnvSection)
	assert.True(t, s.LocationSection)
	assert.Equal(t, 64, s.MaxFrames)
	assert.Empty(t, s.Trace)
	assert.False(t, s.ShowHidden)
}

func TestLoadFrom(t *testing.T) {
	t.Run("no config file yields defaults", func(t *testing.T) {
		clearDebriefEnv(t)

		s, err := LoadFrom(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), s)
	})

	t.Run("toml file overrides defaults", func(t *testing.T) {
		clearDebriefEnv(t)

		dir := t.TempDir()
		content := "theme = \"dark\"\nmax_frames = 16\nspans = false\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

		s, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, "dark", s.Theme)
		assert.Equal(t, 16, s.MaxFrames)
		assert.False(t, s.Spans)
		assert.True(t, s.EnvSection)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		clearDebriefEnv(t)

		dir := t.TempDir()
		content := "theme: light\nenv_section: false\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

		s, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, "light", s.Theme)
		assert.False(t, s.EnvSection)
	})

	t.Run("toml preferred over yaml", func(t *testing.T) {
		clearDebriefEnv(t)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = \"dark\"\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("theme: light\n"), 0644))

		s, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, "dark", s.Theme)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		clearDebriefEnv(t)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = \"dark\"\n"), 0644))
		t.Setenv("DEBRIEF_THEME", "plain")
		t.Setenv("DEBRIEF_MAX_FRAMES", "8")

		s, err := LoadFrom(dir)
		require.NoError(t, err)
		assert.Equal(t, "plain", s.Theme)
		assert.Equal(t, 8, s.MaxFrames)
	})

	t.Run("malformed file reports an error", func(t *testing.T) {
		clearDebriefEnv(t)

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("theme = [unclosed\n"), 0644))

		_, err := LoadFrom(dir)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}

func TestSettingsPolicies(t *testing.T) {
	t.Run("settings baseline applies when env unset", func(t *testing.T) {
		clearDebriefEnv(t)

		s := Settings{Trace: "1", LibTrace: "full", Spans: true, ShowHidden: true}
		assert.Equal(t, VerbosityShort, s.PanicVerbosity())
		assert.Equal(t, VerbosityFull, s.LibVerbosity())
		assert.True(t, s.SpanCaptureEnabled())
		assert.True(t, s.ShowHiddenFrames())
	})

	t.Run("env wins over settings baseline", func(t *testing.T) {
		clearDebriefEnv(t)

		s := Settings{Trace: "full", Spans: true}
		t.Setenv(EnvTrace, "0")
		t.Setenv(EnvSpans, "0")
		assert.Equal(t, VerbosityMinimal, s.PanicVerbosity())
		assert.False(t, s.SpanCaptureEnabled())
	})
}
