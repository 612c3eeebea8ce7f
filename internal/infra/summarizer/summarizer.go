// Package summarizer provides AI-powered text summarization implementations.
// The default provider is the Hugging Face Inference API; adapters for Claude
// (Anthropic) and OpenAI are also available. All providers report failures
// through a shared error set so callers can distinguish an unreachable
// provider from a malformed reply or a timeout.
package summarizer

import (
	"context"
	"errors"
)

// Summarizer generates a condensed version of the given text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

var (
	// ErrProviderUnavailable indicates the provider could not be reached or
	// answered with a non-success status.
	ErrProviderUnavailable = errors.New("summarization provider unavailable")

	// ErrMalformedResponse indicates the provider answered but the payload
	// did not match the expected shape.
	ErrMalformedResponse = errors.New("malformed provider response")

	// ErrProviderTimeout indicates the call exceeded its deadline.
	ErrProviderTimeout = errors.New("summarization provider timeout")
)
