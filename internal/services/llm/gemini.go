package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"google.golang.org/genai"

	"github.com/ternarybob/boardbridge/internal/common"
	"github.com/ternarybob/boardbridge/internal/interfaces"
)

// GeminiProvider implements CompletionProvider using the Google Gemini API.
type GeminiProvider struct {
	config  *common.GeminiConfig
	logger  arbor.ILogger
	client  *genai.Client
	timeout time.Duration
	retry   *RetryConfig
}

var _ interfaces.CompletionProvider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a Gemini completion provider. A nil retry
// config falls back to the defaults.
func NewGeminiProvider(config *common.GeminiConfig, retry *RetryConfig, logger arbor.ILogger) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required (set via GEMINI_API_KEY or gemini.api_key in config)")
	}

	if retry == nil {
		retry = NewDefaultRetryConfig()
	}

	if config.Model == "" {
		config.Model = "gemini-3-flash-preview"
	}

	timeout := 30 * time.Second
	if config.Timeout != "" {
		parsed, err := time.ParseDuration(config.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout duration '%s': %w", config.Timeout, err)
		}
		timeout = parsed
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	provider := &GeminiProvider{
		config:  config,
		logger:  logger,
		client:  client,
		timeout: timeout,
		retry:   retry,
	}

	logger.Debug().
		Str("model", config.Model).
		Dur("timeout", timeout).
		Msg("Gemini completion provider initialized")

	return provider, nil
}

// Complete generates a single completion for the given system instruction
// and user prompt. Rate limit errors are retried with backoff, honoring the
// API-suggested retry delay when present.
func (p *GeminiProvider) Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
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
				Msg("Gemini rate limited; backing off before retry")

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

	return "", fmt.Errorf("Gemini completion failed after %d retries: %w", p.retry.MaxRetries, lastErr)
}

func (p *GeminiProvider) generateCompletion(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(p.config.Temperature),
	}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userPrompt, genai.RoleUser),
	}

	startTime := time.Now()
	resp, err := p.client.Models.GenerateContent(timeoutCtx, p.config.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	// Iterate candidates until non-empty text is found
	var response strings.Builder
	if resp != nil && len(resp.Candidates) > 0 {
		for _, candidate := range resp.Candidates {
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					response.WriteString(part.Text)
				}
			}
			if response.Len() > 0 {
				break
			}
		}
	}

	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from Gemini API")
	}

	p.logger.Debug().
		Int("response_length", response.Len()).
		Dur("duration", time.Since(startTime)).
		Msg("Gemini completion succeeded")

	return response.String(), nil
}

// Close releases the client. The genai client needs no explicit cleanup.
func (p *GeminiProvider) Close() error {
	p.client = nil
	return nil
}
