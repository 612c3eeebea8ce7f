package summarizer

import (
	"fmt"
	"log/slog"
	"os"
)

// NewFromEnv builds the Summarizer selected by SUMMARIZER_PROVIDER.
//
// Recognized values:
//   - "huggingface" (default): requires HUGGINGFACE_API_KEY
//   - "openai": requires OPENAI_API_KEY
//   - "claude": requires ANTHROPIC_API_KEY
//   - "noop": no external calls, for development
func NewFromEnv() (Summarizer, error) {
	provider := os.Getenv("SUMMARIZER_PROVIDER")
	if provider == "" {
		provider = "huggingface"
	}

	switch provider {
	case "huggingface":
		cfg, err := LoadHuggingFaceConfig()
		if err != nil {
			return nil, fmt.Errorf("NewFromEnv: %w", err)
		}
		apiKey := os.Getenv("HUGGINGFACE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("NewFromEnv: HUGGINGFACE_API_KEY is not set")
		}
		return NewHuggingFace(apiKey, cfg), nil

	case "openai":
		cfg, err := LoadOpenAIConfig()
		if err != nil {
			return nil, fmt.Errorf("NewFromEnv: %w", err)
		}
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("NewFromEnv: OPENAI_API_KEY is not set")
		}
		return NewOpenAI(apiKey, cfg), nil

	case "claude":
		cfg, err := LoadClaudeConfig()
		if err != nil {
			return nil, fmt.Errorf("NewFromEnv: %w", err)
		}
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("NewFromEnv: ANTHROPIC_API_KEY is not set")
		}
		return NewClaude(apiKey, cfg), nil

	case "noop":
		slog.Warn("using noop summarizer, no provider calls will be made")
		return NewNoOp(), nil

	default:
		return nil, fmt.Errorf("NewFromEnv: unknown provider %q", provider)
	}
}
