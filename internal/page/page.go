// Package page assembles the final HTML page around a rendered document
// body, including the live-reload wiring when enabled.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

// Data feeds the page template.
type Data struct {
	// Title is the document's canonical absolute path, shown as-is.
	Title string
	// Body is an already-rendered HTML fragment.
	Body template.HTML
	// UseLiveReload makes the page subscribe to /watch and reload on
	// change notifications.
	UseLiveReload bool
}

// Render assembles the full page.
func Render(title, body string, useLiveReload bool) (string, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, Data{
		Title:         title,
		Body:          template.HTML(body),
		UseLiveReload: useLiveReload,
	})
	if err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return buf.String(), nil
}
