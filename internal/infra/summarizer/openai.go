package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"github.com/2003aryan/crisp-ai/internal/resilience/circuitbreaker"
	"github.com/2003aryan/crisp-ai/internal/utils/text"
	"github.com/2003aryan/crisp-ai/pkg/config"
)

// OpenAIConfig holds configuration parameters for the OpenAI summarizer.
type OpenAIConfig struct {
	// CharacterLimit is the maximum number of characters allowed in a summary.
	CharacterLimit int

	// Model is the OpenAI API model identifier to use for summarization.
	Model string

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// GetCharacterLimit implements SummarizerConfig.
func (c *OpenAIConfig) GetCharacterLimit() int {
	return c.CharacterLimit
}

// Validate implements SummarizerConfig.
func (c *OpenAIConfig) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadOpenAIConfig loads configuration from environment variables.
//
// Environment variables:
//   - SUMMARIZER_CHAR_LIMIT: Character limit (default: 900, range: 100-5000)
//   - SUMMARIZER_TIMEOUT: Per-call timeout (default: 30s)
func LoadOpenAIConfig() (*OpenAIConfig, error) {
	cfg := &OpenAIConfig{
		CharacterLimit: config.GetEnvInt("SUMMARIZER_CHAR_LIMIT", 900),
		Model:          openai.GPT3Dot5Turbo,
		Timeout:        config.GetEnvDuration("SUMMARIZER_TIMEOUT", 30*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OpenAI configuration: %w", err)
	}
	return cfg, nil
}

// OpenAI implements the Summarizer interface using OpenAI's chat API.
// Calls go through a circuit breaker but are never retried automatically.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	config          *OpenAIConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
func NewOpenAI(apiKey string, cfg *OpenAIConfig) *OpenAI {
	slog.Info("Initialized OpenAI summarizer with configuration",
		slog.Int("character_limit", cfg.CharacterLimit),
		slog.String("model", cfg.Model))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a summary of the given text using OpenAI's chat API.
func (o *OpenAI) Summarize(ctx context.Context, inputText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
		return o.doSummarize(ctx, inputText)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("openai api circuit breaker open, request rejected",
				slog.String("service", "openai-api"),
				slog.String("state", o.circuitBreaker.State().String()))
			return "", fmt.Errorf("Summarize: circuit breaker open: %w", ErrProviderUnavailable)
		}
		return "", err
	}

	return cbResult.(string), nil
}

func (o *OpenAI) buildPrompt(inputText string) string {
	return fmt.Sprintf("Summarize the following text in at most %d characters:\n%s",
		o.config.CharacterLimit, inputText)
}

// doSummarize performs the actual API call without circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, inputText string) (string, error) {
	prompt := o.buildPrompt(inputText)
	inputLength := text.CountRunes(inputText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.Int("input_length", inputLength),
		slog.Int("character_limit", o.config.CharacterLimit))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    "system",
			Content: prompt,
		}},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		if isTimeout(ctx, err) {
			return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderTimeout)
		}
		return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderUnavailable)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: empty response: %w", ErrMalformedResponse)
	}

	summary := resp.Choices[0].Message.Content
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= o.config.CharacterLimit

	slog.InfoContext(ctx, "Summarization completed",
		slog.Int("summary_length", summaryLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordLength(summaryLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		o.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
