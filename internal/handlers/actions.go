package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/sse"
	"github.com/aaronzipp/player-compare/internal/store"
)

// apply runs fn under the session lock and broadcasts what it changed
func (ctx *Context) apply(w http.ResponseWriter, r *http.Request, fn func(s *store.Session)) {
	id := chi.URLParam(r, "session")
	s, exists := ctx.Sessions.Get(id)
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	// Delivery happens under the lock so batches keep the order of the actions.
	s.Lock()
	fn(s)
	patches := s.Page.Flush()
	sent, err := sse.DeliverPatchesLocked(s, patches)
	s.Unlock()

	if err != nil {
		log.Printf("session %s: %v", id, err)
	} else if debug {
		log.Printf("session %s: %d patches sent to %d clients", id, len(patches), sent)
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSelect assigns the posted player id to a slot. An empty id clears it.
func (ctx *Context) HandleSelect(w http.ResponseWriter, r *http.Request) {
	slot, ok := models.ParseSlot(chi.URLParam(r, "slot"))
	if !ok {
		http.Error(w, "Invalid slot", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	playerID := r.FormValue("id")
	ctx.apply(w, r, func(s *store.Session) {
		s.Renderer.SetSelection(slot, playerID)
	})
}

// HandleReset clears both slots
func (ctx *Context) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx.apply(w, r, func(s *store.Session) {
		s.Renderer.Reset()
	})
}

// HandleDetail opens the detail modal for a player. Unknown players change nothing.
func (ctx *Context) HandleDetail(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player")
	ctx.apply(w, r, func(s *store.Session) {
		s.Renderer.OpenDetailByID(playerID)
	})
}
