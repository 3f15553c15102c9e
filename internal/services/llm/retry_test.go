package llm

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsRateLimitError(t *testing.T) {
	assert.False(t, IsRateLimitError(nil))
	assert.False(t, IsRateLimitError(errors.New("connection refused")))
	assert.True(t, IsRateLimitError(errors.New("Error 429: too many requests")))
	assert.True(t, IsRateLimitError(errors.New("RESOURCE_EXHAUSTED: quota exceeded")))
	assert.True(t, IsRateLimitError(errors.New("rate_limit_error: slow down")))
}

func TestExtractRetryDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), ExtractRetryDelay(nil))
	assert.Equal(t, time.Duration(0), ExtractRetryDelay(errors.New("no hint here")))

	err := errors.New("Error 429, Message: quota exceeded. Please retry in 45.5s., Status: RESOURCE_EXHAUSTED")
	assert.Equal(t, 45500*time.Millisecond, ExtractRetryDelay(err))

	err = errors.New("retryDelay: 10s")
	assert.Equal(t, 10*time.Second, ExtractRetryDelay(err))
}

func TestCalculateBackoff(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    10 * time.Second,
		MaxBackoff:        60 * time.Second,
		BackoffMultiplier: 2.0,
	}

	assert.Equal(t, 10*time.Second, cfg.CalculateBackoff(0, 0))
	assert.Equal(t, 20*time.Second, cfg.CalculateBackoff(1, 0))

	// API-provided delay takes precedence over the initial backoff
	assert.Equal(t, 31*time.Second, cfg.CalculateBackoff(0, 30*time.Second))

	// Capped at MaxBackoff
	assert.Equal(t, 60*time.Second, cfg.CalculateBackoff(5, 0))
}
