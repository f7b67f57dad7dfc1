// Package llm constructs the chat-completion client for the configured
// provider.
package llm

import (
	"github.com/lilswapnil/scotty/internal/config"
	"github.com/sashabaranov/go-openai"
)

// NewClient creates a chat-completion client from the LLM configuration.
func NewClient(cfg config.LLMConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientCfg)
}
