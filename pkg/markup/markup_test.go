package markup_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/debrief/pkg/markup"
	"github.com/arthur-debert/debrief/pkg/theme"
)

func TestMain(m *testing.M) {
	// Set a dummy renderer for all tests to ensure consistent behavior
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	m.Run()
}

func TestRender(t *testing.T) {
	testStyles := markup.StyleMap{
		"error":   lipgloss.NewStyle().Bold(true),
		"hint":    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		"warning": lipgloss.NewStyle().Italic(true),
	}

	// Create a buffer renderer for consistent testing
	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	markup.SetDefaultRenderer(renderer)

	t.Run("go template expansion with styling", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		template := `<error>{{.Message}}</error>`
		data := struct{ Message string }{Message: "file not found"}

		result, err := markup.Render(template, data, testStyles)
		require.NoError(t, err)

		expected := testStyles["error"].Render("file not found")
		assert.Equal(t, expected, result)
	})

	t.Run("multiple template variables", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		template := `<error>{{.Message}}</error> in <hint>{{.Path}}</hint>`
		data := struct {
			Message string
			Path    string
		}{
			Message: "parse failure",
			Path:    "config.toml",
		}

		result, err := markup.Render(template, data, testStyles)
		require.NoError(t, err)

		expected := testStyles["error"].Render("parse failure") + " in " + testStyles["hint"].Render("config.toml")
		assert.Equal(t, expected, result)
	})

	t.Run("invalid go template syntax", func(t *testing.T) {
		template := `<error>{{.Message</error>`
		_, err := markup.Render(template, nil, testStyles)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "template")
	})

	t.Run("template execution error", func(t *testing.T) {
		template := `<error>{{.NonExistentField}}</error>`
		data := struct{ Message string }{Message: "x"}
		_, err := markup.Render(template, data, testStyles)
		assert.Error(t, err)
	})
}

func TestExpandTags(t *testing.T) {
	testStyles := markup.StyleMap{
		"error":      lipgloss.NewStyle().Bold(true),
		"hint":       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		"warning":    lipgloss.NewStyle().Italic(true),
		"suggestion": lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")),
	}

	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	markup.SetDefaultRenderer(renderer)

	t.Run("simple styled tag", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<error>connection refused</error>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		expected := testStyles["error"].Render("connection refused")
		assert.Equal(t, expected, result)
	})

	t.Run("multiple styled tags", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<error>failed</error> and <warning>retried</warning>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		expected := testStyles["error"].Render("failed") + " and " + testStyles["warning"].Render("retried")
		assert.Equal(t, expected, result)
	})

	t.Run("nested tags", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<error>failed at <hint>line 3</hint></error>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		expected := testStyles["error"].Render("failed at " + testStyles["hint"].Render("line 3"))
		assert.Equal(t, expected, result)
	})

	t.Run("unknown tag ignored", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<unknown>Text</unknown>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)
		assert.Equal(t, "Text", result)
	})

	t.Run("no-format tag with color enabled", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<error>Status</error><no-format> (plain only)</no-format>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		// no-format content should be excluded when color is enabled
		expected := testStyles["error"].Render("Status")
		assert.Equal(t, expected, result)
	})

	t.Run("no-format tag with color disabled", func(t *testing.T) {
		renderer.SetColorProfile(termenv.Ascii)

		input := `<error>Status</error><no-format> (plain only)</no-format>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		assert.Equal(t, "Status (plain only)", result)
	})

	t.Run("plain text without tags", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `Just plain text without any tags.`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)
		assert.Equal(t, input, result)
	})

	t.Run("invalid XML returns original", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<error>Unclosed tag`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)
		assert.Equal(t, input, result)
	})

	t.Run("empty string", func(t *testing.T) {
		result, err := markup.ExpandTags("", testStyles)
		require.NoError(t, err)
		assert.Equal(t, "", result)
	})

	t.Run("styles applied only with color support", func(t *testing.T) {
		renderer.SetColorProfile(termenv.Ascii)

		input := `<error>failed</error> <suggestion>retry</suggestion>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)
		assert.Equal(t, "failed retry", result)
	})

	t.Run("theme style map drives expansion", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		styles := markup.StyleMap(theme.Dark().StyleMap())
		input := `<note>set the PATH</note>`
		result, err := markup.ExpandTags(input, styles)
		require.NoError(t, err)

		expected := styles["note"].Render("set the PATH")
		assert.Equal(t, expected, result)
	})
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips simple tags",
			input:    "<error>Hello</error> <hint>World</hint>",
			expected: "Hello World",
		},
		{
			name:     "strips nested tags",
			input:    "<header><error>Title</error> <hint>Subtitle</hint></header>",
			expected: "Title Subtitle",
		},
		{
			name:     "preserves plain text",
			input:    "Plain text without any tags",
			expected: "Plain text without any tags",
		},
		{
			name:     "handles empty tags",
			input:    "<empty></empty>Text",
			expected: "Text",
		},
		{
			name:     "preserves newlines",
			input:    "<a>First</a>\n<b>Second</b>",
			expected: "First\nSecond",
		},
		{
			name:     "strips no-format tags",
			input:    "<error>Styled</error> <no-format>Plain</no-format>",
			expected: "Styled Plain",
		},
		{
			name:     "handles self-closing tags",
			input:    "Before<br/>After",
			expected: "BeforeAfter",
		},
		{
			name:     "handles invalid XML gracefully",
			input:    "Not <valid XML",
			expected: "Not <valid XML",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "deeply nested tags",
			input:    "<a><b><c><d>Deep</d></c></b></a>",
			expected: "Deep",
		},
		{
			name:     "tags with spaces in content",
			input:    "<tag>  spaced  content  </tag>",
			expected: "  spaced  content  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := markup.StripTags(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEdgeCases(t *testing.T) {
	testStyles := markup.StyleMap{
		"test": lipgloss.NewStyle().Bold(true),
	}

	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	markup.SetDefaultRenderer(renderer)

	t.Run("nil data in template", func(t *testing.T) {
		input := `<test>Static content</test>`
		result, err := markup.Render(input, nil, testStyles)
		require.NoError(t, err)
		assert.NotEmpty(t, result)
	})

	t.Run("empty style map", func(t *testing.T) {
		input := `<unknown>Text</unknown>`
		result, err := markup.ExpandTags(input, markup.StyleMap{})
		require.NoError(t, err)
		assert.Equal(t, "Text", result)
	})

	t.Run("special characters in content", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		// A bare ampersand breaks XML parsing, so the original comes back
		input := `<test>Special: & < > " '</test>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)
		assert.Equal(t, input, result)
	})

	t.Run("escaped special characters work", func(t *testing.T) {
		renderer.SetColorProfile(termenv.TrueColor)

		input := `<test>Special: &amp; &lt; &gt;</test>`
		result, err := markup.ExpandTags(input, testStyles)
		require.NoError(t, err)

		expected := testStyles["test"].Render("Special: & < >")
		assert.Equal(t, expected, result)
	})
}
