// Package summary provides the summarization use cases: generating a
// summary for extracted text, saving the result, and listing a user's
// saved summaries.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/infra/summarizer"
	"github.com/2003aryan/crisp-ai/internal/repository"
	"github.com/2003aryan/crisp-ai/internal/utils/text"
)

// DefaultWordLimit is the maximum accepted input size in words.
// Inputs at exactly the limit are accepted.
const DefaultWordLimit = 800

// WordLimitError reports an input that exceeds the word ceiling. It carries
// both the observed count and the limit so callers can surface them.
type WordLimitError struct {
	Count int
	Limit int
}

func (e *WordLimitError) Error() string {
	return fmt.Sprintf("input is %d words, limit is %d", e.Count, e.Limit)
}

// Service provides summary generation and persistence use cases.
type Service struct {
	Repo       repository.SummaryRepository
	Summarizer summarizer.Summarizer
	WordLimit  int
}

// NewService creates a summary Service with the default word limit.
func NewService(repo repository.SummaryRepository, sum summarizer.Summarizer) *Service {
	return &Service{Repo: repo, Summarizer: sum, WordLimit: DefaultWordLimit}
}

// checkWordLimit validates the input size. The limit is inclusive.
func (s *Service) checkWordLimit(input string) error {
	count := text.CountWords(input)
	if count > s.WordLimit {
		return &WordLimitError{Count: count, Limit: s.WordLimit}
	}
	return nil
}

// Summarize validates the input size and asks the provider for a summary.
// The word count here is authoritative; the provider is never called for
// over-limit input.
func (s *Service) Summarize(ctx context.Context, input string) (string, error) {
	if err := s.checkWordLimit(input); err != nil {
		return "", err
	}

	result, err := s.Summarizer.Summarize(ctx, input)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return result, nil
}

// Save persists a summary for the given user. The input is re-validated
// against the word limit so the save path cannot be used to store
// over-limit text directly.
func (s *Service) Save(ctx context.Context, userID int64, inputText, summaryText string) (int64, error) {
	if inputText == "" || summaryText == "" {
		return 0, fmt.Errorf("save summary: %w", entity.ErrInvalidInput)
	}
	if err := s.checkWordLimit(inputText); err != nil {
		return 0, err
	}

	record := &entity.SummaryRecord{
		UserID:    userID,
		InputText: inputText,
		Summary:   summaryText,
	}
	id, err := s.Repo.Save(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("save summary: %w", err)
	}

	slog.InfoContext(ctx, "summary saved",
		slog.Int64("summary_id", id),
		slog.Int64("user_id", userID))

	return id, nil
}

// ListForUser returns the user's saved summaries, oldest first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]*entity.SummaryRecord, error) {
	records, err := s.Repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list summaries: %w", err)
	}
	return records, nil
}
