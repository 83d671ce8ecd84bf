package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronzipp/player-compare/internal/compare"
	"github.com/aaronzipp/player-compare/internal/models"
)

// CompareResponse is the JSON form of one comparison
type CompareResponse struct {
	Left    models.Player       `json:"left"`
	Right   models.Player       `json:"right"`
	Results []models.StatResult `json:"results"`
	Tally   models.Tally        `json:"tally"`
	Chart   models.ChartSpec    `json:"chart"`
}

// HandleHealth reports liveness
func (ctx *Context) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"players":  ctx.Catalog.Len(),
		"sessions": ctx.Sessions.Len(),
	})
}

// HandlePlayers lists the catalog in order
func (ctx *Context) HandlePlayers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ctx.Catalog.All())
}

// HandlePlayer returns one player by id
func (ctx *Context) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := ctx.Catalog.FindByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "player not found: "+id)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleCompare compares ?left= against ?right=
func (ctx *Context) HandleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	leftID, rightID := q.Get("left"), q.Get("right")
	if leftID == "" || rightID == "" {
		respondError(w, http.StatusBadRequest, "left and right are required")
		return
	}
	left, ok := ctx.Catalog.FindByID(leftID)
	if !ok {
		respondError(w, http.StatusNotFound, "player not found: "+leftID)
		return
	}
	right, ok := ctx.Catalog.FindByID(rightID)
	if !ok {
		respondError(w, http.StatusNotFound, "player not found: "+rightID)
		return
	}

	cmp := compare.Compare(left, right)
	respondJSON(w, http.StatusOK, CompareResponse{
		Left:    left,
		Right:   right,
		Results: cmp.Results[:],
		Tally:   cmp.Tally(),
		Chart:   compare.Project(left, right),
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
