// Package web holds the HTML templates rendered by the page handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// ParseTemplates parses every page template. Templates are addressed by file name,
// e.g. "users.html".
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}
