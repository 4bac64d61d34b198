package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppDirName is the directory under the XDG config home that holds the
// user configuration file.
const AppDirName = "debrief"

// Settings are the rendering knobs an application can configure through a
// config file or DEBRIEF_* environment variables. The zero value disables
// everything; use Default for the compiled-in baseline.
type Settings struct {
	// Theme selects a theme preset by name; "auto" detects from the
	// terminal.
	Theme string `koanf:"theme" toml:"theme"`
	// Trace is the baseline for the panic-path verbosity, same syntax as
	// EnvTrace.
	Trace string `koanf:"trace" toml:"trace"`
	// LibTrace is the baseline for the error-path verbosity, same syntax
	// as EnvLibTrace.
	LibTrace string `koanf:"lib_trace" toml:"lib_trace"`
	// Spans enables span trace capture at report creation.
	Spans bool `koanf:"spans" toml:"spans"`
	// ShowHidden disables stack frame filtering.
	ShowHidden bool `koanf:"show_hidden" toml:"show_hidden"`
	// EnvSection enables the hint block explaining how to raise verbosity.
	EnvSection bool `koanf:"env_section" toml:"env_section"`
	// LocationSection enables the "Location:" section in panic reports.
	LocationSection bool `koanf:"location_section" toml:"location_section"`
	// MaxFrames bounds stack capture depth.
	MaxFrames int `koanf:"max_frames" toml:"max_frames"`
}

// Default returns the compiled-in settings used when nothing has been
// loaded or installed.
func Default() Settings {
	return Settings{
		Theme:           "auto",
		Spans:           true,
		EnvSection:      true,
		LocationSection: true,
		MaxFrames:       64,
	}
}

// DefaultPath returns the user config file path under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "config.toml")
}

// Load builds Settings by layering, in order of increasing priority:
// compiled-in defaults, the user config file (config.toml or config.yaml
// under the XDG config home), and DEBRIEF_* environment variables.
func Load() (Settings, error) {
	return LoadFrom(filepath.Join(xdg.ConfigHome, AppDirName))
}

// LoadFrom is Load with an explicit config directory, used by tests and by
// applications that keep their configuration elsewhere.
func LoadFrom(dir string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Default().asMap(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	for _, filename := range []string{"config.toml", "config.yaml"} {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(filename, ".yaml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Settings{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		break
	}

	if err := k.Load(env.Provider("DEBRIEF_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DEBRIEF_"))
	}), nil); err != nil {
		return Settings{}, fmt.Errorf("failed to load environment overrides: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s, nil
}

func (s Settings) asMap() map[string]interface{} {
	return map[string]interface{}{
		"theme":            s.Theme,
		"trace":            s.Trace,
		"lib_trace":        s.LibTrace,
		"spans":            s.Spans,
		"show_hidden":      s.ShowHidden,
		"env_section":      s.EnvSection,
		"location_section": s.LocationSection,
		"max_frames":       s.MaxFrames,
	}
}

// PanicVerbosity resolves the verbosity for reports rendered on the panic
// path. EnvTrace overrides the configured baseline.
func (s Settings) PanicVerbosity() Verbosity {
	if v, ok := os.LookupEnv(EnvTrace); ok {
		return ParseVerbosity(v)
	}
	return ParseVerbosity(s.Trace)
}

// LibVerbosity resolves the verbosity for ordinary error reports. The lib
// setting takes priority over the trace setting, and a "full" in either
// selects VerbosityFull.
func (s Settings) LibVerbosity() Verbosity {
	lib, libSet := os.LookupEnv(EnvLibTrace)
	if !libSet {
		lib = s.LibTrace
	}
	trace, traceSet := os.LookupEnv(EnvTrace)
	if !traceSet {
		trace = s.Trace
	}
	if lib == "full" || trace == "full" {
		return VerbosityFull
	}
	if lib != "" {
		return ParseVerbosity(lib)
	}
	return ParseVerbosity(trace)
}

// SpanCaptureEnabled reports whether span traces should be captured at
// report creation. EnvSpans overrides the configured baseline.
func (s Settings) SpanCaptureEnabled() bool {
	if v, ok := os.LookupEnv(EnvSpans); ok {
		return v != "0" && v != "false"
	}
	return s.Spans
}

// ShowHiddenFrames reports whether stack frame filtering is disabled.
// EnvShowHidden overrides the configured baseline.
func (s Settings) ShowHiddenFrames() bool {
	if v, ok := os.LookupEnv(EnvShowHidden); ok {
		return v != "" && v != "0"
	}
	return s.ShowHidden
}

// PanicVerbosity resolves the panic-path verbosity against the compiled-in
// defaults. Reports created before any configuration is installed use this.
func PanicVerbosity() Verbosity {
	return Default().PanicVerbosity()
}

// LibVerbosity resolves the error-path verbosity against the compiled-in
// defaults.
func LibVerbosity() Verbosity {
	return Default().LibVerbosity()
}

// SpanCaptureEnabled resolves the span capture switch against the
// compiled-in defaults.
func SpanCaptureEnabled() bool {
	return Default().SpanCaptureEnabled()
}

// ShowHiddenFrames resolves the frame filtering switch against the
// compiled-in defaults.
func ShowHiddenFrames() bool {
	return Default().ShowHiddenFrames()
}
