package web

import (
	"io/fs"
	"testing"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	for _, name := range []string{"index.html", "modal.html"} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %s not defined", name)
		}
	}
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"app.js", "style.css"} {
		if _, err := fs.Stat(Static(), name); err != nil {
			t.Errorf("static %s: %v", name, err)
		}
	}
}
