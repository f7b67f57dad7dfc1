// Package gateway forwards a chat transcript, framed by the persona
// instruction, to the completion provider and relays the reply. The gateway
// is stateless: every call re-sends the full transcript and no session
// memory is kept server-side.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/lilswapnil/scotty/internal/config"
	"github.com/lilswapnil/scotty/internal/llm"
	"github.com/lilswapnil/scotty/internal/logger"
	"github.com/lilswapnil/scotty/internal/session"
)

// ErrEmptyCompletion is returned when the provider answers without any
// completion choice. Callers treat it like any other failure.
var ErrEmptyCompletion = errors.New("provider returned no completion choices")

// Gateway performs single request/response forwarding to the completion
// provider.
type Gateway struct {
	client llm.Client
	cfg    config.LLMConfig
}

// New creates a gateway around the given completion client.
func New(client llm.Client, cfg config.LLMConfig) *Gateway {
	return &Gateway{client: client, cfg: cfg}
}

// Complete sends the persona instruction followed by transcript, in order,
// to the provider and returns the first completion's text verbatim. The
// request is bounded by the configured timeout so a hung provider cannot
// leave the caller waiting forever.
func (g *Gateway) Complete(ctx context.Context, transcript []session.Message, personaText string) (string, error) {
	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(transcript)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: personaText,
	})
	for _, m := range transcript {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Messages:    messages,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		logger.L.Error("completion request failed", "model", g.cfg.Model, "error", err)
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		logger.L.Warn("completion response had no choices", "model", g.cfg.Model)
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
