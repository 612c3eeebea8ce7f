package extractor

import (
	"fmt"
	"os"
	"unicode/utf8"
)

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("extractPlain: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("extractPlain: invalid UTF-8: %w", ErrCorruptDocument)
	}
	return string(data), nil
}
