package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronzipp/player-compare/internal/dialog"
	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
	"github.com/aaronzipp/player-compare/internal/sse"
)

func writeEvent(w http.ResponseWriter, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// replayable drops one-shot attributes from a snapshot so a reconnecting
// stream does not reopen a dialog the user already closed.
func replayable(patches []region.Patch) []region.Patch {
	for i := range patches {
		delete(patches[i].Attrs, dialog.AttrShow)
	}
	return patches
}

// HandleSSE streams region patches for one page session
func (ctx *Context) HandleSSE(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")

	// Set headers for SSE
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable buffering in nginx/proxies

	s, exists := ctx.Sessions.Get(id)
	if !exists {
		if debug {
			log.Printf("handleSSE: session %s not found, sending nav-redirect to home", id)
		}
		writeEvent(w, sse.EventNavRedirect, "/")
		return
	}

	clientChan := make(chan models.SSEMessage, sse.BufferSize)
	snapshot := sse.AddClient(s, clientChan)
	defer sse.RemoveClient(s, clientChan)

	// An eviction between Get and AddClient would leave this stream orphaned.
	if !ctx.Sessions.Exists(id) {
		writeEvent(w, sse.EventNavRedirect, "/")
		return
	}

	data, err := sse.EncodePatches(replayable(snapshot))
	if err != nil {
		log.Printf("handleSSE: session %s: %v", id, err)
		return
	}
	writeEvent(w, sse.EventRegions, data)

	// Listen for updates
	reqCtx := r.Context()
	for {
		select {
		case <-reqCtx.Done():
			if debug {
				log.Printf("handleSSE: client of session %s disconnected", id)
			}
			return
		case msg, ok := <-clientChan:
			if !ok {
				if debug {
					log.Printf("handleSSE: stream of session %s closed by server", id)
				}
				return
			}
			if debug {
				log.Printf("handleSSE: sending event=%s to session %s", msg.Event, id)
			}
			writeEvent(w, msg.Event, msg.Data)
		}
	}
}
