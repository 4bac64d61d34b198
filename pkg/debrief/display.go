package debrief

import (
	"fmt"

	"github.com/arthur-debert/debrief/pkg/markup"
	"github.com/arthur-debert/debrief/pkg/theme"
)

// MarkupText is a payload whose style tags expand against the report's
// theme when the report is rendered, via pkg/markup.
type MarkupText string

// Markup wraps s so that tags like <note>…</note> are styled at render
// time. Invalid markup degrades to the raw string.
func Markup(s string) MarkupText {
	return MarkupText(s)
}

// display produces the text of a section or help payload. Deferring this
// to render time keeps payload construction free on the success path and
// lets MarkupText pick up the theme actually in use.
func display(v any, th theme.Theme) string {
	switch t := v.(type) {
	case nil:
		return ""
	case MarkupText:
		out, err := markup.ExpandTags(string(t), th.StyleMap())
		if err != nil {
			return string(t)
		}
		return out
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}
