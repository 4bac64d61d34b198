// Package theme maps the abstract parts of an error report to lipgloss
// terminal styles. Presets are defined in an embedded YAML file and picked
// by name or detected from the terminal.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds one style per report part. A zero style leaves the text
// unchanged, so the zero Theme renders plain text.
type Theme struct {
	// ErrorMessage styles the primary message and chain links.
	ErrorMessage lipgloss.Style
	// CauseLabel styles the "Caused by:" and "Error:" labels.
	CauseLabel lipgloss.Style
	// SectionHeader styles custom section headers.
	SectionHeader lipgloss.Style
	// NoteLabel, WarningLabel and SuggestionLabel style the help entry
	// labels.
	NoteLabel       lipgloss.Style
	WarningLabel    lipgloss.Style
	SuggestionLabel lipgloss.Style
	// Hint styles the environment hint lines.
	Hint lipgloss.Style
	// TraceHeader styles the stack and span trace headings.
	TraceHeader lipgloss.Style
	// TraceFunction, TraceLocation, TraceDependency and TraceHidden style
	// stack frame parts.
	TraceFunction   lipgloss.Style
	TraceLocation   lipgloss.Style
	TraceDependency lipgloss.Style
	TraceHidden     lipgloss.Style
	// SpanName and SpanField style span trace entries.
	SpanName  lipgloss.Style
	SpanField lipgloss.Style
	// Snippet styles source snippet lines; SnippetArrow marks the frame's
	// own line.
	Snippet      lipgloss.Style
	SnippetArrow lipgloss.Style
}

// StyleMap exposes the theme's styles under their preset slot names, for
// expanding markup tags in section and help payloads.
func (t Theme) StyleMap() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"error":      t.ErrorMessage,
		"cause":      t.CauseLabel,
		"header":     t.SectionHeader,
		"note":       t.NoteLabel,
		"warning":    t.WarningLabel,
		"suggestion": t.SuggestionLabel,
		"hint":       t.Hint,
	}
}

// Plain returns the style-free theme used for piped output and golden
// files.
func Plain() Theme {
	return Theme{}
}

// Dark returns the preset for dark terminal backgrounds.
func Dark() Theme {
	t, _ := ByName("dark")
	return t
}

// Light returns the preset for light terminal backgrounds.
func Light() Theme {
	t, _ := ByName("light")
	return t
}
