package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/2003aryan/crisp-ai/internal/resilience/circuitbreaker"
	"github.com/2003aryan/crisp-ai/internal/utils/text"
	"github.com/2003aryan/crisp-ai/pkg/config"
)

// ClaudeConfig holds configuration parameters for the Claude summarizer.
type ClaudeConfig struct {
	// CharacterLimit is the maximum number of characters allowed in a summary.
	CharacterLimit int

	// Model is the Claude API model identifier to use for summarization.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// GetCharacterLimit implements SummarizerConfig.
func (c *ClaudeConfig) GetCharacterLimit() int {
	return c.CharacterLimit
}

// Validate implements SummarizerConfig.
func (c *ClaudeConfig) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadClaudeConfig loads configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_CHAR_LIMIT: Character limit (default: 900, range: 100-5000)
//   - SUMMARIZER_TIMEOUT: Per-call timeout (default: 30s)
func LoadClaudeConfig() (*ClaudeConfig, error) {
	cfg := &ClaudeConfig{
		CharacterLimit: config.GetEnvInt("SUMMARIZER_CHAR_LIMIT", 900),
		Model:          string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens:      1024,
		Timeout:        config.GetEnvDuration("SUMMARIZER_TIMEOUT", 30*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Claude configuration: %w", err)
	}
	return cfg, nil
}

// Claude implements the Summarizer interface using Anthropic's Claude API.
// Calls go through a circuit breaker but are never retried automatically.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	config          *ClaudeConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
func NewClaude(apiKey string, cfg *ClaudeConfig) *Claude {
	slog.Info("Initialized Claude summarizer with configuration",
		slog.Int("character_limit", cfg.CharacterLimit),
		slog.String("model", cfg.Model))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a summary of the given text using Claude.
func (c *Claude) Summarize(ctx context.Context, inputText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
		return c.doSummarize(ctx, inputText)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("claude api circuit breaker open, request rejected",
				slog.String("service", "claude-api"),
				slog.String("state", c.circuitBreaker.State().String()))
			return "", fmt.Errorf("Summarize: circuit breaker open: %w", ErrProviderUnavailable)
		}
		return "", err
	}

	return cbResult.(string), nil
}

func (c *Claude) buildPrompt(inputText string) string {
	return fmt.Sprintf("Summarize the following text in at most %d characters:\n%s",
		c.config.CharacterLimit, inputText)
}

// doSummarize performs the actual API call without circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, inputText string) (string, error) {
	requestID := uuid.New().String()

	prompt := c.buildPrompt(inputText)
	inputLength := text.CountRunes(inputText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.Int("input_length", inputLength),
		slog.Int("character_limit", c.config.CharacterLimit))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderTimeout)
		}
		return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderUnavailable)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: empty response: %w", ErrMalformedResponse)
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: unexpected response type: %w", ErrMalformedResponse)
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= c.config.CharacterLimit

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration(duration)
	c.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		c.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
