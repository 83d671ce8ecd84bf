package store

import (
	"fmt"
	"testing"

	"github.com/aaronzipp/player-compare/internal/catalog"
	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/ui"
)

func newTestSession(t *testing.T, id string) *Session {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	return NewSession(id, cat, "http://localhost:8080")
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, "abc")
	if s.Renderer.State() != models.RenderEmpty {
		t.Errorf("State = %v", s.Renderer.State())
	}
	s.Renderer.SetSelection(models.SlotLeft, "messi")
	s.Renderer.SetSelection(models.SlotRight, "son")
	if s.Charts.Live() != 1 {
		t.Errorf("Live = %d", s.Charts.Live())
	}
	if got := s.Page.Attr(ui.RegionShare, "href"); got != "http://localhost:8080/?left=messi&right=son" {
		t.Errorf("share href = %q", got)
	}
}

func TestSessionStore(t *testing.T) {
	st, err := NewSessionStore(2)
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}

	a := newTestSession(t, "a")
	a.Renderer.SetSelection(models.SlotLeft, "messi")
	a.Renderer.SetSelection(models.SlotRight, "ronaldo")
	st.Set("a", a)
	st.Set("b", newTestSession(t, "b"))

	if got, ok := st.Get("a"); !ok || got != a {
		t.Fatal("Get(a) failed")
	}
	// a was just used, so c evicts b
	st.Set("c", newTestSession(t, "c"))
	if st.Exists("b") {
		t.Error("b should have been evicted")
	}
	if !st.Exists("a") || !st.Exists("c") || st.Len() != 2 {
		t.Errorf("unexpected contents, len=%d", st.Len())
	}

	st.Set("d", newTestSession(t, "d"))
	st.Set("e", newTestSession(t, "e"))
	if st.Exists("a") {
		t.Fatal("a should have been evicted")
	}
	if a.Charts.Live() != 0 || a.Renderer.State() != models.RenderEmpty {
		t.Errorf("evicted session not reset: live=%d state=%v", a.Charts.Live(), a.Renderer.State())
	}

	st.Delete("e")
	if _, ok := st.Get("e"); ok {
		t.Error("e still present after Delete")
	}

	if _, err := NewSessionStore(0); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestSessionSSEClients(t *testing.T) {
	s := newTestSession(t, "sse")
	chans := make([]chan models.SSEMessage, 3)
	for i := range chans {
		chans[i] = make(chan models.SSEMessage, 1)
		s.AddSSEClient(chans[i])
	}
	if s.SSEClientCount() != 3 {
		t.Fatalf("count = %d", s.SSEClientCount())
	}
	s.RemoveSSEClient(chans[1])
	clients := s.GetSSEClients()
	if len(clients) != 2 {
		t.Fatalf("clients = %d", len(clients))
	}
	for _, c := range clients {
		if c == chans[1] {
			t.Error("removed client still listed")
		}
	}
}

func BenchmarkSessionStoreChurn(b *testing.B) {
	cat, _ := catalog.Default()
	st, _ := NewSessionStore(64)
	for i := 0; i < b.N; i++ {
		id := fmt.Sprintf("s%d", i)
		s := NewSession(id, cat, "")
		s.Renderer.SetSelection(models.SlotLeft, "messi")
		s.Renderer.SetSelection(models.SlotRight, "kane")
		st.Set(id, s)
	}
}

func TestSessionStoreEvictHook(t *testing.T) {
	var evicted []string
	st, err := NewSessionStore(1, WithEvictHook(func(s *Session) {
		if s.Renderer.State() != models.RenderEmpty {
			t.Errorf("hook saw state %v, want reset session", s.Renderer.State())
		}
		evicted = append(evicted, s.ID)
	}))
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}
	a := newTestSession(t, "a")
	a.Renderer.SetSelection(models.SlotLeft, "messi")
	st.Set("a", a)
	st.Set("b", newTestSession(t, "b"))
	st.Delete("b")
	if len(evicted) != 2 || evicted[0] != "a" || evicted[1] != "b" {
		t.Errorf("evicted = %v, want [a b]", evicted)
	}
}
