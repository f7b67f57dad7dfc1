package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/store"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Contact handles POST /api/contact: it validates and persists a
// contact-form submission.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		Error(w, http.StatusServiceUnavailable, "contact form is not available")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Message == "" {
		Error(w, http.StatusBadRequest, "name and message are required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	id, err := h.repo.SaveContact(r.Context(), store.ContactSubmission{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logger.L.Error("failed to save contact submission", "error", err)
		Error(w, http.StatusInternalServerError, "failed to save submission")
		return
	}

	JSON(w, http.StatusCreated, map[string]int64{"id": id})
}
