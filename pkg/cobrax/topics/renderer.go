package topics

// Renderer formats topic content for terminal display. The format argument
// is the source file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer passes content through unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
