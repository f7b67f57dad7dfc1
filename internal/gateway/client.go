package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lilswapnil/scotty/internal/session"
)

// ErrUpstream is returned when the gateway endpoint reports a failure
// payload. The payload's error text is intentionally not surfaced; callers
// substitute their own user-facing fallback.
var ErrUpstream = errors.New("gateway reported failure")

// chatRequest is the wire shape accepted by POST /api/askscotty.
type chatRequest struct {
	Messages     []session.Message `json:"messages"`
	SystemPrompt string            `json:"systemPrompt"`
}

// chatResponse is the wire shape returned by POST /api/askscotty.
type chatResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Client talks to a running gateway endpoint over HTTP. It implements the
// same Complete contract as Gateway, so front-ends can be wired to either.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an HTTP client for the gateway at baseURL
// (e.g. http://localhost:8080).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Complete posts the transcript and persona to the gateway endpoint and
// returns the reply text.
func (c *Client) Complete(ctx context.Context, transcript []session.Message, personaText string) (string, error) {
	body, err := json.Marshal(chatRequest{Messages: transcript, SystemPrompt: personaText})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/askscotty", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("post chat request: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || out.Error != "" {
		return "", ErrUpstream
	}
	return out.Message, nil
}
