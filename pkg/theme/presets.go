package theme

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var themesYAML []byte

type styleSpec struct {
	Color  string `yaml:"color"`
	Bold   bool   `yaml:"bold"`
	Faint  bool   `yaml:"faint"`
	Italic bool   `yaml:"italic"`
}

var presets map[string]map[string]styleSpec

func init() {
	if err := yaml.Unmarshal(themesYAML, &presets); err != nil {
		panic(fmt.Sprintf("theme: invalid embedded presets: %v", err))
	}
}

// ByName returns the preset with the given name. The second return value
// is false for unknown names.
func ByName(name string) (Theme, bool) {
	specs, ok := presets[name]
	if !ok {
		return Theme{}, false
	}
	return fromSpecs(specs), true
}

// Names lists the available preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps a configured theme name to a Theme: "auto" or an empty name
// detects from the terminal, anything else selects a preset. Unknown names
// fall back to detection.
func Resolve(name string) Theme {
	switch name {
	case "", "auto":
		return Detect()
	}
	if t, ok := ByName(name); ok {
		return t
	}
	return Detect()
}

func fromSpecs(specs map[string]styleSpec) Theme {
	get := func(key string) lipgloss.Style {
		spec, ok := specs[key]
		if !ok {
			return lipgloss.NewStyle()
		}
		s := lipgloss.NewStyle()
		if spec.Color != "" {
			s = s.Foreground(lipgloss.Color(spec.Color))
		}
		if spec.Bold {
			s = s.Bold(true)
		}
		if spec.Faint {
			s = s.Faint(true)
		}
		if spec.Italic {
			s = s.Italic(true)
		}
		return s
	}

	return Theme{
		ErrorMessage:    get("error-message"),
		CauseLabel:      get("cause-label"),
		SectionHeader:   get("section-header"),
		NoteLabel:       get("note-label"),
		WarningLabel:    get("warning-label"),
		SuggestionLabel: get("suggestion-label"),
		Hint:            get("hint"),
		TraceHeader:     get("trace-header"),
		TraceFunction:   get("trace-function"),
		TraceLocation:   get("trace-location"),
		TraceDependency: get("trace-dependency"),
		TraceHidden:     get("trace-hidden"),
		SpanName:        get("span-name"),
		SpanField:       get("span-field"),
		Snippet:         get("snippet"),
		SnippetArrow:    get("snippet-arrow"),
	}
}
