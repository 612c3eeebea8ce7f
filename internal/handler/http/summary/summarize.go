package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/2003aryan/crisp-ai/internal/handler/http/respond"
	"github.com/2003aryan/crisp-ai/internal/infra/summarizer"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	sumUC "github.com/2003aryan/crisp-ai/internal/usecase/summary"
)

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// wordLimitResponse carries the observed count alongside the limit so
// clients can show users how far over they are.
type wordLimitResponse struct {
	Error string `json:"error"`
	Count int    `json:"count"`
	Limit int    `json:"limit"`
}

// SummarizeHandler generates a summary for the posted text.
type SummarizeHandler struct {
	Svc *sumUC.Service
}

func (h SummarizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	result, err := h.Svc.Summarize(r.Context(), req.Text)
	if err != nil {
		var wle *sumUC.WordLimitError
		switch {
		case errors.As(err, &wle):
			logger.Warn("summarize rejected",
				slog.String("reason", "word_limit"),
				slog.Int("count", wle.Count),
				slog.Int("limit", wle.Limit))
			respond.JSON(w, http.StatusBadRequest, wordLimitResponse{
				Error: wle.Error(),
				Count: wle.Count,
				Limit: wle.Limit,
			})
		case errors.Is(err, summarizer.ErrProviderTimeout):
			logger.Error("summarize failed",
				slog.String("reason", "provider_timeout"))
			respond.SafeErrorV2(w, http.StatusGatewayTimeout,
				respond.NewAppError(http.StatusGatewayTimeout, "summarization provider timeout", err))
		case errors.Is(err, summarizer.ErrProviderUnavailable),
			errors.Is(err, summarizer.ErrMalformedResponse):
			logger.Error("summarize failed",
				slog.String("reason", "provider_error"),
				slog.String("error", err.Error()))
			respond.SafeErrorV2(w, http.StatusBadGateway,
				respond.NewAppError(http.StatusBadGateway, "summarization provider unavailable", err))
		default:
			logger.Error("summarize failed",
				slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, summarizeResponse{Summary: result})
}
