package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// HomePage is the index template rendered once. It takes no data, so every
// request can be served the same bytes.
type HomePage struct {
	body []byte
}

func NewHomePage() (*HomePage, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to render index template: %w", err)
	}

	return &HomePage{body: buf.Bytes()}, nil
}

// Bytes returns the rendered page. Callers must not modify it.
func (h *HomePage) Bytes() []byte {
	return h.body
}

// StaticFS holds the assets the home page loads from /static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
