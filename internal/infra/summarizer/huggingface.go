package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/2003aryan/crisp-ai/internal/resilience/circuitbreaker"
	"github.com/2003aryan/crisp-ai/internal/utils/text"
	"github.com/2003aryan/crisp-ai/pkg/config"
)

const defaultHuggingFaceEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// HuggingFaceConfig holds configuration parameters for the Hugging Face summarizer.
type HuggingFaceConfig struct {
	// Endpoint is the full inference URL, including the model path.
	Endpoint string

	// CharacterLimit is the maximum number of characters expected in a summary.
	// It is an observability target, not a hard cap; the model controls
	// output length.
	CharacterLimit int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// GetCharacterLimit implements SummarizerConfig.
func (c *HuggingFaceConfig) GetCharacterLimit() int {
	return c.CharacterLimit
}

// Validate implements SummarizerConfig.
func (c *HuggingFaceConfig) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadHuggingFaceConfig loads configuration from environment variables.
//
// Environment variables:
//   - HUGGINGFACE_ENDPOINT: Inference URL (default: bart-large-cnn)
//   - SUMMARIZER_CHAR_LIMIT: Character limit (default: 900, range: 100-5000)
//   - SUMMARIZER_TIMEOUT: Per-call timeout (default: 30s)
func LoadHuggingFaceConfig() (*HuggingFaceConfig, error) {
	cfg := &HuggingFaceConfig{
		Endpoint:       config.GetEnvString("HUGGINGFACE_ENDPOINT", defaultHuggingFaceEndpoint),
		CharacterLimit: config.GetEnvInt("SUMMARIZER_CHAR_LIMIT", 900),
		Timeout:        config.GetEnvDuration("SUMMARIZER_TIMEOUT", 30*time.Second),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid Hugging Face configuration: %w", err)
	}
	return cfg, nil
}

// HuggingFace implements the Summarizer interface against the Hugging Face
// Inference API. Calls go through a circuit breaker but are never retried
// automatically; a failed request is reported to the caller as-is.
type HuggingFace struct {
	client          *http.Client
	apiKey          string
	circuitBreaker  *circuitbreaker.CircuitBreaker
	config          *HuggingFaceConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewHuggingFace creates a new Hugging Face summarizer with the given API key.
func NewHuggingFace(apiKey string, cfg *HuggingFaceConfig) *HuggingFace {
	slog.Info("Initialized Hugging Face summarizer with configuration",
		slog.String("endpoint", cfg.Endpoint),
		slog.Int("character_limit", cfg.CharacterLimit),
		slog.Duration("timeout", cfg.Timeout))

	return &HuggingFace{
		client:          &http.Client{Timeout: cfg.Timeout},
		apiKey:          apiKey,
		circuitBreaker:  circuitbreaker.New(circuitbreaker.HuggingFaceAPIConfig()),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// inferenceResult is one element of the provider's response array.
type inferenceResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize generates a summary of the given text via the inference API.
// Failed calls are not retried; the error carries one of the package
// sentinels so callers can map it to a transport status.
func (h *HuggingFace) Summarize(ctx context.Context, inputText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	cbResult, err := h.circuitBreaker.Execute(func() (interface{}, error) {
		return h.doSummarize(ctx, inputText)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("hugging face circuit breaker open, request rejected",
				slog.String("service", "huggingface-api"),
				slog.String("state", h.circuitBreaker.State().String()))
			return "", fmt.Errorf("Summarize: circuit breaker open: %w", ErrProviderUnavailable)
		}
		return "", err
	}

	return cbResult.(string), nil
}

// doSummarize performs the actual API call without circuit breaker.
func (h *HuggingFace) doSummarize(ctx context.Context, inputText string) (string, error) {
	requestID := uuid.New().String()
	inputLength := text.CountRunes(inputText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.Int("input_length", inputLength))

	body, err := json.Marshal(map[string]string{"inputs": inputText})
	if err != nil {
		return "", fmt.Errorf("doSummarize: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("doSummarize: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		if isTimeout(ctx, err) {
			slog.ErrorContext(ctx, "Summarization timed out",
				slog.String("request_id", requestID),
				slog.Duration("duration", duration))
			return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderTimeout)
		}
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("doSummarize: %v: %w", err, ErrProviderUnavailable)
	}
	defer func() { _ = resp.Body.Close() }()

	// 1 MiB is far beyond any plausible summary payload.
	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("doSummarize: read body: %w", ErrProviderUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "Provider returned non-success status",
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: status %d: %w", resp.StatusCode, ErrProviderUnavailable)
	}

	var results []inferenceResult
	if err := json.Unmarshal(payload, &results); err != nil {
		slog.ErrorContext(ctx, "Provider returned unparseable payload",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: unmarshal: %w", ErrMalformedResponse)
	}
	if len(results) == 0 || results[0].SummaryText == "" {
		slog.ErrorContext(ctx, "Provider returned empty result set",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("doSummarize: empty result: %w", ErrMalformedResponse)
	}

	summary := results[0].SummaryText
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= h.config.CharacterLimit

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	h.metricsRecorder.RecordLength(summaryLength)
	h.metricsRecorder.RecordDuration(duration)
	h.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		h.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}

// isTimeout reports whether err represents an exceeded deadline rather than
// an unreachable provider.
func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
