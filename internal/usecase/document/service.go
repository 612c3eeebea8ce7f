// Package document provides the document ingestion use case: an uploaded
// file is staged on disk, its text extracted, and the staging file removed.
package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/2003aryan/crisp-ai/internal/infra/extractor"
)

// Service provides document text extraction use cases.
type Service struct {
	Extractor extractor.Extractor

	// UploadDir is where uploads are staged. Files placed here live only
	// for the duration of one Extract call.
	UploadDir string
}

// NewService creates a new document Service staging files under uploadDir.
func NewService(ex extractor.Extractor, uploadDir string) *Service {
	return &Service{Extractor: ex, UploadDir: uploadDir}
}

// Extract stages the upload in a scoped temp file, extracts its text, and
// removes the file. The temp file is removed on every exit path, including
// extraction failures.
func (s *Service) Extract(ctx context.Context, upload io.Reader, mediaType string) (string, error) {
	path, err := s.stage(upload)
	if err != nil {
		return "", fmt.Errorf("extract document: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.WarnContext(ctx, "failed to remove staged upload",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}()

	text, err := s.Extractor.Extract(ctx, path, mediaType)
	if err != nil {
		return "", fmt.Errorf("extract document: %w", err)
	}
	return text, nil
}

// stage copies the upload to a uniquely named file under UploadDir.
func (s *Service) stage(upload io.Reader) (string, error) {
	if err := os.MkdirAll(s.UploadDir, 0o750); err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}

	path := filepath.Join(s.UploadDir, uuid.New().String())
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}

	if _, err := io.Copy(f, upload); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("stage: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("stage: %w", err)
	}
	return path, nil
}
