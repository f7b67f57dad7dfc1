package api

import (
	"encoding/json"
	"net/http"

	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/session"
)

// upstreamErrorMessage is the only text returned when the completion
// provider rejects a call. Provider error detail never reaches the caller.
const (
	upstreamErrorMessage = "Failed to get response from OpenAI"
	internalErrorMessage = "Internal server error"
)

type chatRequest struct {
	Messages     []session.Message `json:"messages"`
	SystemPrompt string            `json:"systemPrompt"`
}

type chatResponse struct {
	Message string `json:"message"`
}

// AskScotty handles POST /api/askscotty: it forwards the transcript plus the
// persona instruction to the completion provider and relays the reply.
func (h *Handler) AskScotty(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.L.Warn("chat request decode failed", "error", err)
		Error(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	personaText := req.SystemPrompt
	if personaText == "" {
		personaText = h.personaText
	}

	reply, err := h.completer.Complete(r.Context(), req.Messages, personaText)
	if err != nil {
		logger.L.Error("completion gateway failed", "error", err)
		Error(w, http.StatusInternalServerError, upstreamErrorMessage)
		return
	}

	JSON(w, http.StatusOK, chatResponse{Message: reply})
}
