// Package upload provides the HTTP handler for document ingestion.
// It accepts a multipart upload, extracts its text, and returns the text
// to the caller; nothing is persisted by this endpoint.
package upload

import (
	"errors"
	"log/slog"
	"net/http"

	hhttp "github.com/2003aryan/crisp-ai/internal/handler/http"
	"github.com/2003aryan/crisp-ai/internal/handler/http/respond"
	"github.com/2003aryan/crisp-ai/internal/infra/extractor"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	docUC "github.com/2003aryan/crisp-ai/internal/usecase/document"
)

// maxUploadBytes caps the in-memory portion of multipart parsing.
const maxUploadBytes = 10 << 20 // 10 MiB

type textResponse struct {
	Text string `json:"text"`
}

// Handler extracts text from an uploaded document.
type Handler struct {
	Svc *docUC.Service
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("file field is required"))
		return
	}
	defer func() { _ = file.Close() }()

	mediaType := header.Header.Get("Content-Type")

	text, err := h.Svc.Extract(r.Context(), file, mediaType)
	hhttp.RecordDocumentExtracted(mediaType, err == nil)
	if err != nil {
		switch {
		case errors.Is(err, extractor.ErrUnsupportedFormat):
			logger.Warn("upload rejected",
				slog.String("reason", "unsupported_format"),
				slog.String("media_type", mediaType),
				slog.String("filename", header.Filename))
			respond.SafeError(w, http.StatusBadRequest, extractor.ErrUnsupportedFormat)
		case errors.Is(err, extractor.ErrCorruptDocument):
			logger.Warn("upload rejected",
				slog.String("reason", "corrupt_document"),
				slog.String("media_type", mediaType),
				slog.String("filename", header.Filename))
			respond.SafeError(w, http.StatusBadRequest, extractor.ErrCorruptDocument)
		default:
			logger.Error("extraction failed",
				slog.String("error", err.Error()),
				slog.String("filename", header.Filename))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	logger.Info("document extracted",
		slog.String("media_type", mediaType),
		slog.Int("text_bytes", len(text)))

	respond.JSON(w, http.StatusOK, textResponse{Text: text})
}
