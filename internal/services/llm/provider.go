// Package llm provides completion providers for slide summarization.
// Two cloud providers are supported: Anthropic Claude and Google Gemini.
package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// NewProvider creates the completion provider selected by configuration.
// The summarize.max_retries setting bounds rate limit retries.
func NewProvider(cfg *common.Config, logger arbor.ILogger) (interfaces.CompletionProvider, error) {
	logger.Info().
		Str("provider", string(cfg.LLM.DefaultProvider)).
		Int("max_retries", cfg.Summarize.MaxRetries).
		Msg("Initializing completion provider")

	retry := NewDefaultRetryConfig()
	retry.MaxRetries = cfg.Summarize.MaxRetries

	switch cfg.LLM.DefaultProvider {
	case common.LLMProviderClaude:
		return NewClaudeProvider(&cfg.Claude, retry, logger)
	case common.LLMProviderGemini:
		return NewGeminiProvider(&cfg.Gemini, retry, logger)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.LLM.DefaultProvider)
	}
}
