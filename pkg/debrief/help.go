package debrief

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/debrief/pkg/theme"
)

type helpKind int

const (
	helpNote helpKind = iota
	helpWarning
	helpSuggestion
)

// helpEntry is one Note/Warning/Suggestion line. The payload stays
// undisplayed until render time.
type helpEntry struct {
	kind    helpKind
	payload any
}

func (k helpKind) label() string {
	switch k {
	case helpWarning:
		return "Warning"
	case helpSuggestion:
		return "Suggestion"
	default:
		return "Note"
	}
}

func (k helpKind) style(th theme.Theme) lipgloss.Style {
	switch k {
	case helpWarning:
		return th.WarningLabel
	case helpSuggestion:
		return th.SuggestionLabel
	default:
		return th.NoteLabel
	}
}
