package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer of every page, in page order.
func extractPDF(path string) (text string, err error) {
	// The pdf library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractPDF: %v: %w", r, ErrCorruptDocument)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("extractPDF: %v: %w", err, ErrCorruptDocument)
	}
	defer func() { _ = f.Close() }()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extractPDF: %v: %w", err, ErrCorruptDocument)
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, reader); err != nil {
		return "", fmt.Errorf("extractPDF: %v: %w", err, ErrCorruptDocument)
	}
	return sb.String(), nil
}
