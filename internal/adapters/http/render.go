package web

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed content/welcome.md
var welcomeMarkdown []byte

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// parseTemplates loads every page fragment once at startup.
// Fragments are executed by name: page_open, page_close, list_* and one per resource.
func parseTemplates() (*template.Template, error) {
	return template.New("octofit").ParseFS(templateFS, "templates/*.html")
}

// renderMarkdown converts trusted markdown copy into HTML.
func renderMarkdown(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(md, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
