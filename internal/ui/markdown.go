package ui

import "github.com/charmbracelet/glamour"

// RenderMarkdown renders a markdown summary for the terminal. The raw
// markdown is returned unchanged when rendering is unavailable.
func RenderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
