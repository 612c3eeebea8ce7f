package summary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	hhttp "github.com/2003aryan/crisp-ai/internal/handler/http"
	"github.com/2003aryan/crisp-ai/internal/handler/http/auth"
	"github.com/2003aryan/crisp-ai/internal/handler/http/respond"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	sumUC "github.com/2003aryan/crisp-ai/internal/usecase/summary"
)

type saveRequest struct {
	InputText string `json:"inputText"`
	Summary   string `json:"summary"`
}

type saveResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// SaveHandler persists a generated summary for the authenticated user.
type SaveHandler struct {
	Svc *sumUC.Service
}

func (h SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	id, err := h.Svc.Save(r.Context(), userID, req.InputText, req.Summary)
	if err != nil {
		var wle *sumUC.WordLimitError
		switch {
		case errors.As(err, &wle):
			respond.JSON(w, http.StatusBadRequest, wordLimitResponse{
				Error: wle.Error(),
				Count: wle.Count,
				Limit: wle.Limit,
			})
		case errors.Is(err, entity.ErrInvalidInput):
			respond.SafeError(w, http.StatusBadRequest, errors.New("inputText and summary are required"))
		default:
			logger.Error("save summary failed",
				slog.Int64("user_id", userID),
				slog.String("error", err.Error()))
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	hhttp.RecordSummarySaved()
	respond.JSON(w, http.StatusOK, saveResponse{Message: "Summary saved successfully", ID: id})
}
