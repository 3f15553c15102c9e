package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// ClaudeProvider implements CompletionProvider using the Anthropic API.
type ClaudeProvider struct {
	config    *common.ClaudeConfig
	logger    arbor.ILogger
	client    anthropic.Client
	timeout   time.Duration
	maxTokens int
	retry     *RetryConfig
}

var _ interfaces.CompletionProvider = (*ClaudeProvider)(nil)

// NewClaudeProvider creates a Claude completion provider. A nil retry
// config falls back to the defaults.
func NewClaudeProvider(config *common.ClaudeConfig, retry *RetryConfig, logger arbor.ILogger) (*ClaudeProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Anthropic API key is required (set via ANTHROPIC_API_KEY or claude.api_key in config)")
	}

	if retry == nil {
		retry = NewDefaultRetryConfig()
	}

	if config.Model == "" {
		config.Model = "claude-haiku-3-5-20241022"
	}

	timeout := 30 * time.Second
	if config.Timeout != "" {
		parsed, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
		}
		timeout = parsed
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	client := anthropic.NewClient(
		option.WithAPIKey(config.APIKey),
	)

	provider := &ClaudeProvider{
		config:    config,
		logger:    logger,
		client:    client,
		timeout:   timeout,
		maxTokens: maxTokens,
		retry:     retry,
	}

	logger.Debug().
		Str("model", config.Model).
		Dur("timeout", timeout).
		Int("max_tokens", maxTokens).
		Msg("Claude completion provider initialized")

	return provider, nil
}

// Complete generates a single completion for the given system instruction
// and user prompt. Rate limit errors are retried with backoff; other errors
// return immediately.
func (p *ClaudeProvider) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("user prompt cannot be empty")
	}

	var lastErr error
	for attempt := 0; attempt <= p.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := p.retry.CalculateBackoff(attempt-1, ExtractRetryDelay(lastErr))
			p.logger.Warn().
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Claude rate limited; backing off before retry")

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		response, err := p.generateCompletion(ctx, systemInstruction, userPrompt)
		if err == nil {
			return response, nil
		}
		lastErr = err

		if !IsRateLimitError(err) {
			return "", err
		}
	}

	return "", fmt.Errorf("Claude completion failed after %d retries: %w", p.retry.MaxRetries, lastErr)
}

func (p *ClaudeProvider) generateCompletion(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.config.Model),
		MaxTokens: int64(p.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	if p.config.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(p.config.Temperature))
	}

	if systemInstruction != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemInstruction},
		}
	}

	startTime := time.Now()
	resp, err := p.client.Messages.New(timeoutCtx, params)
	if err != nil {
		return "", fmt.Errorf("Claude API call failed: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}

	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from Claude API")
	}

	p.logger.Debug().
		Int("response_length", response.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Claude completion succeeded")

	return response.String(), nil
}

// Close releases the client. The Anthropic client needs no explicit cleanup.
func (p *ClaudeProvider) Close() error {
	return nil
}
