package markup

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap associates tag names with the lipgloss style applied to the
// tag's content.
type StyleMap map[string]lipgloss.Style

// noFormatTag wraps content that only appears when color is unavailable.
const noFormatTag = "no-format"

var defaultRenderer = lipgloss.DefaultRenderer()

// SetDefaultRenderer replaces the renderer consulted for terminal
// capabilities. Tests use it to pin the color profile.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	defaultRenderer = r
}

// Render executes input as a Go text/template with data, then expands
// style tags in the result.
func Render(input string, data any, styles StyleMap) (string, error) {
	tmpl, err := template.New("markup").Parse(input)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return ExpandTags(buf.String(), styles)
}

// ExpandTags replaces style tags in input with styled text. Tags that have
// no entry in styles contribute their content unstyled. When the input is
// not well-formed XML it is returned unchanged.
func ExpandTags(input string, styles StyleMap) (string, error) {
	if input == "" {
		return "", nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(input); err != nil {
		return input, nil
	}

	plain := defaultRenderer.ColorProfile() == termenv.Ascii

	var b strings.Builder
	for _, tok := range doc.Child {
		b.WriteString(expandToken(tok, styles, plain))
	}
	return b.String(), nil
}

func expandToken(tok etree.Token, styles StyleMap, plain bool) string {
	switch t := tok.(type) {
	case *etree.CharData:
		return t.Data
	case *etree.Element:
		if t.Tag == noFormatTag {
			if !plain {
				return ""
			}
		}

		var b strings.Builder
		for _, child := range t.Child {
			b.WriteString(expandToken(child, styles, plain))
		}
		content := b.String()

		if t.Tag == noFormatTag {
			return content
		}
		if style, ok := styles[t.Tag]; ok && !plain {
			return style.Render(content)
		}
		return content
	default:
		return ""
	}
}

// StripTags removes all style tags from input, keeping only text content.
// Input that is not well-formed XML is returned unchanged.
func StripTags(input string) string {
	if input == "" {
		return input
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(input); err != nil {
		return input
	}

	var b strings.Builder
	collectText(&doc.Element, &b)
	return b.String()
}

func collectText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			collectText(t, b)
		}
	}
}
