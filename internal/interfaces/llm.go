package interfaces

import "context"

// CompletionProvider is the pluggable language-model contract consumed by
// the summarization pipeline. Implementations may call any backend; the
// pipeline treats every error uniformly (timeout, transport, authorization,
// malformed payload) by degrading the affected slide.
type CompletionProvider interface {
	// Complete sends a system instruction and user prompt and returns the
	// raw text response. The context carries the per-call timeout.
	Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error)

	// Close releases provider resources.
	Close() error
}
