package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aaronzipp/player-compare/internal/models"
	"github.com/aaronzipp/player-compare/internal/region"
	"github.com/aaronzipp/player-compare/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// AddClient adds a new SSE client to the session and returns the page snapshot
// taken under the same lock, so no patch falls between the two.
func AddClient(s *store.Session, client chan models.SSEMessage) []region.Patch {
	s.Lock()
	defer s.Unlock()
	s.AddSSEClient(client)
	if debug {
		log.Printf("addSSEClient: session %s now has %d clients", s.ID, s.SSEClientCount())
	}
	return s.Page.Snapshot()
}

// RemoveClient removes an SSE client from the session
func RemoveClient(s *store.Session, client chan models.SSEMessage) {
	s.Lock()
	defer s.Unlock()
	s.RemoveSSEClient(client)
	if debug {
		log.Printf("removeSSEClient: session %s now has %d clients", s.ID, s.SSEClientCount())
	}
}

// EncodePatches renders region patches as a single-line event payload
func EncodePatches(patches []region.Patch) (string, error) {
	if patches == nil {
		patches = []region.Patch{}
	}
	data, err := json.Marshal(patches)
	if err != nil {
		return "", fmt.Errorf("encoding patches: %w", err)
	}
	return string(data), nil
}

// Broadcast sends a message to all connected SSE clients of the session
func Broadcast(s *store.Session, event, data string) int {
	s.Lock()
	defer s.Unlock()
	return DeliverLocked(s, event, data)
}

// DeliverLocked queues a message for every client without blocking and must be
// called with the session lock held, so batches reach clients in the order the
// page changed. A client whose buffer is full is dropped and its channel closed;
// its stream ends and the browser reconnects to a fresh snapshot.
func DeliverLocked(s *store.Session, event, data string) int {
	msg := models.SSEMessage{Event: event, Data: data}
	clients := s.GetSSEClients()
	successCount := 0
	for _, client := range clients {
		select {
		case client <- msg:
			successCount++
		default:
			s.RemoveSSEClient(client)
			close(client)
			log.Printf("broadcastSSE: session %s client buffer full, dropping client", s.ID)
		}
	}
	if debug {
		log.Printf("broadcastSSE: event=%s sent to %d/%d clients", event, successCount, len(clients))
	}
	return successCount
}

// DeliverPatchesLocked sends region patches as one regions event. Empty batches
// are skipped. The session lock must be held.
func DeliverPatchesLocked(s *store.Session, patches []region.Patch) (int, error) {
	if len(patches) == 0 {
		return 0, nil
	}
	data, err := EncodePatches(patches)
	if err != nil {
		return 0, err
	}
	return DeliverLocked(s, EventRegions, data), nil
}

// Evicted sends every client of an evicted session home and closes their
// streams. It is a store eviction hook and runs with the session lock held.
func Evicted(s *store.Session) {
	DeliverLocked(s, EventNavRedirect, "/")
	for _, client := range s.GetSSEClients() {
		s.RemoveSSEClient(client)
		close(client)
	}
}
