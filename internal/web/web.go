// Package web embeds the page templates and browser assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/aaronzipp/player-compare/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates parses the page templates
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"optionLabel": render.OptionLabel,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// Static returns the browser assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded, so Sub cannot fail at runtime
		panic(err)
	}
	return sub
}
