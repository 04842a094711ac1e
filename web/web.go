// Package web bundles the HTML templates served by the course finder.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every bundled page template
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}
