/*
Package markup expands XML-like style tags into lipgloss-styled terminal
text. Section bodies and help payloads are authored with semantic tags and
stay free of escape codes until render time, when the active theme decides
what each tag means.

A tag name selects a style from the StyleMap passed to ExpandTags or
Render:

	styles := theme.Dark().StyleMap()
	out, err := markup.ExpandTags(`retry with <hint>--verbose</hint>`, styles)

Render runs the input through text/template first, so payloads can carry
data:

	out, err := markup.Render(`<error>{{.Op}} failed</error>`, data, styles)

StripTags drops the tags and keeps the text, for logs and golden files.

Three behaviors keep the engine safe to point at arbitrary text. Input
that is not well-formed XML passes through unchanged, so a stray "<" in an
error message never breaks rendering. Tags without a StyleMap entry
contribute their content unstyled. And when the terminal reports no color
support the content passes through with no escape codes at all.

The <no-format> tag inverts the usual gating: its content appears only
when color is unavailable, which lets a payload substitute plain-text
markers for styling:

	<suggestion>retry</suggestion><no-format> (recommended)</no-format>

Terminal capability comes from the lipgloss default renderer, which
honors NO_COLOR and non-terminal output.
*/
package markup
