package share

import (
	"bytes"
	"testing"

	"github.com/aaronzipp/player-compare/internal/models"
)

func TestLink(t *testing.T) {
	tests := []struct {
		base string
		sel  models.Selection
		want string
	}{
		{"http://localhost:8080", models.Selection{}, "http://localhost:8080/"},
		{"http://localhost:8080/", models.Selection{Left: "messi"}, "http://localhost:8080/?left=messi"},
		{"https://compare.example", models.Selection{Left: "messi", Right: "ronaldo"}, "https://compare.example/?left=messi&right=ronaldo"},
		{"", models.Selection{Right: "a b"}, "/?right=a+b"},
	}
	for _, tt := range tests {
		if got := Link(tt.base, tt.sel); got != tt.want {
			t.Errorf("Link(%q, %+v) = %q, want %q", tt.base, tt.sel, got, tt.want)
		}
	}
}

func TestQRCache(t *testing.T) {
	q, err := NewQRCache(128, 2)
	if err != nil {
		t.Fatalf("NewQRCache: %v", err)
	}

	png, err := q.PNG("http://localhost:8080/?left=messi")
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("output is not a PNG: % x", png[:8])
	}

	again, _ := q.PNG("http://localhost:8080/?left=messi")
	if &again[0] != &png[0] {
		t.Error("second call should be served from the cache")
	}

	q.PNG("b")
	q.PNG("c")
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}

	if _, err := NewQRCache(128, 0); err == nil {
		t.Error("expected error for zero capacity")
	}
}
