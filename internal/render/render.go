// Package render builds the HTML error pages from a single embedded template.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"errpages_api/internal/domain"
)

// MIMEHTML is the Content-Type of every rendered page.
const MIMEHTML = "text/html; charset=utf-8"

const pageTemplate = "error.html"

//go:embed templates/error.html
var templates embed.FS

// Renderer turns an ErrorResponse into a complete HTML document.
// It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded page template.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/"+pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template into a buffer so the caller can write the
// body in one piece.
func (r *Renderer) Render(page domain.ErrorResponse) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, pageTemplate, page); err != nil {
		return nil, fmt.Errorf("render %d page: %w", page.StatusCode, err)
	}
	return buf.Bytes(), nil
}
