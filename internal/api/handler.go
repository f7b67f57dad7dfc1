// Package api provides the HTTP handlers for the site: the chat gateway
// endpoint, the portfolio data endpoints and the contact form.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/lilswapnil/scotty/internal/store"
	"github.com/lilswapnil/scotty/internal/widget"
)

// Handler bundles the dependencies shared by all endpoints.
type Handler struct {
	completer   widget.Completer
	personaText string
	repo        store.Repository
}

// NewHandler creates a Handler. repo may be nil when the contact endpoint is
// not mounted.
func NewHandler(completer widget.Completer, personaText string, repo store.Repository) *Handler {
	return &Handler{
		completer:   completer,
		personaText: personaText,
		repo:        repo,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
