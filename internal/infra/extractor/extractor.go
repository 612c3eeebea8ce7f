// Package extractor converts uploaded documents to plain text.
//
// The supported format set is closed: plain text, PDF, and DOCX. Anything
// else is rejected up front with ErrUnsupportedFormat, before the file
// content is touched.
package extractor

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when the declared media type is not
	// one of the supported formats.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrCorruptDocument is returned when the file content cannot be parsed
	// as its declared format.
	ErrCorruptDocument = errors.New("corrupt document")
)

// Supported media types.
const (
	MediaTypePlain = "text/plain"
	MediaTypePDF   = "application/pdf"
	MediaTypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor extracts plain text from a document stored on disk.
type Extractor interface {
	// Extract reads the file at path and returns its textual content.
	// mediaType is the declared MIME type of the upload.
	Extract(ctx context.Context, path, mediaType string) (string, error)
}

type fileExtractor struct{}

// New returns an Extractor dispatching on the declared media type.
func New() Extractor {
	return fileExtractor{}
}

func (fileExtractor) Extract(ctx context.Context, path, mediaType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch mediaType {
	case MediaTypePlain:
		return extractPlain(path)
	case MediaTypePDF:
		return extractPDF(path)
	case MediaTypeDOCX:
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("Extract: %q: %w", mediaType, ErrUnsupportedFormat)
	}
}
