package document_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/2003aryan/crisp-ai/internal/infra/extractor"
	"github.com/2003aryan/crisp-ai/internal/usecase/document"
)

// ─────────────────────────────────────────────
// スタブ：Extractor
// ─────────────────────────────────────────────
type stubExtractor struct {
	text string
	err  error

	// seenPath records the staged file path for later inspection
	seenPath string
}

func (s *stubExtractor) Extract(_ context.Context, path, _ string) (string, error) {
	s.seenPath = path
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestService_Extract(t *testing.T) {
	ex := &stubExtractor{text: "extracted text"}
	svc := document.NewService(ex, t.TempDir())

	got, err := svc.Extract(context.Background(), strings.NewReader("raw bytes"), extractor.MediaTypePlain)
	if err != nil {
		t.Fatalf("Extract err=%v", err)
	}
	if got != "extracted text" {
		t.Errorf("Extract got=%q", got)
	}

	// Staged file must have held the upload and be gone now.
	if ex.seenPath == "" {
		t.Fatal("extractor never saw a staged file")
	}
	if _, err := os.Stat(ex.seenPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("staged file still exists: %v", err)
	}
}

func TestService_Extract_RemovesFileOnFailure(t *testing.T) {
	ex := &stubExtractor{err: extractor.ErrCorruptDocument}
	svc := document.NewService(ex, t.TempDir())

	_, err := svc.Extract(context.Background(), strings.NewReader("raw"), extractor.MediaTypePDF)
	if !errors.Is(err, extractor.ErrCorruptDocument) {
		t.Fatalf("Extract err=%v, want ErrCorruptDocument", err)
	}
	if _, err := os.Stat(ex.seenPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("staged file survived a failed extraction: %v", err)
	}
}

func TestService_Extract_UploadDirEmptyAfterRuns(t *testing.T) {
	dir := t.TempDir()
	ex := &stubExtractor{text: "t"}
	svc := document.NewService(ex, dir)

	for i := 0; i < 5; i++ {
		if _, err := svc.Extract(context.Background(), strings.NewReader("x"), extractor.MediaTypePlain); err != nil {
			t.Fatalf("Extract err=%v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir err=%v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("upload dir not empty: %d entries", len(entries))
	}
}
