package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronzipp/player-compare/internal/share"
)

// HandleShareQR serves a QR code of the session's current permalink
func (ctx *Context) HandleShareQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	s, exists := ctx.Sessions.Get(id)
	if !exists {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	s.Lock()
	link := share.Link(ctx.BaseURL, s.Renderer.Selection())
	s.Unlock()

	png, err := ctx.QR.PNG(link)
	if err != nil {
		log.Printf("share: encoding QR for session %s: %v", id, err)
		http.Error(w, "Could not encode QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}
