package store

import (
	"sync"
	"time"

	"github.com/aaronzipp/player-compare/internal/chart"
	"github.com/aaronzipp/player-compare/internal/dialog"
	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
	"github.com/aaronzipp/player-compare/internal/share"
	"github.com/aaronzipp/player-compare/internal/ui"
)

// Session is one open comparison page
type Session struct {
	ID        string
	CreatedAt time.Time
	Page      *region.Page
	Charts    *chart.Canvas
	Renderer  *ui.Renderer

	mu         sync.Mutex
	sseClients map[chan models.SSEMessage]struct{}
}

// NewSession builds a page, its collaborators and a renderer in the Empty state
func NewSession(id string, players ui.Finder, baseURL string) *Session {
	page := region.NewPage(ui.PageRegions()...)
	charts := chart.NewCanvas(page, ui.RegionChart)
	dlg := dialog.NewRegionDialog(page, ui.RegionModal)
	renderer := ui.NewRenderer(players, page, charts, dlg, ui.WithShareLink(func(sel models.Selection) string {
		return share.Link(baseURL, sel)
	}))
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		Page:      page,
		Charts:    charts,
		Renderer:  renderer,
	}
}

// Lock acquires the session lock. Every event on the page runs under it.
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// GetSSEClients returns a copy of the SSE clients (must be called with lock held)
func (s *Session) GetSSEClients() []chan models.SSEMessage {
	clients := make([]chan models.SSEMessage, 0, len(s.sseClients))
	for c := range s.sseClients {
		clients = append(clients, c)
	}
	return clients
}

// AddSSEClient adds a new SSE client to the session
func (s *Session) AddSSEClient(client chan models.SSEMessage) {
	if s.sseClients == nil {
		s.sseClients = make(map[chan models.SSEMessage]struct{})
	}
	s.sseClients[client] = struct{}{}
}

// RemoveSSEClient removes an SSE client from the session
func (s *Session) RemoveSSEClient(client chan models.SSEMessage) {
	delete(s.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (s *Session) SSEClientCount() int {
	return len(s.sseClients)
}
