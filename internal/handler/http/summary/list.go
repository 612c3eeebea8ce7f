package summary

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/2003aryan/crisp-ai/internal/handler/http/auth"
	"github.com/2003aryan/crisp-ai/internal/handler/http/respond"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	sumUC "github.com/2003aryan/crisp-ai/internal/usecase/summary"
)

// ListHandler returns the authenticated user's saved summaries, oldest first.
type ListHandler struct {
	Svc *sumUC.Service
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	records, err := h.Svc.ListForUser(r.Context(), userID)
	if err != nil {
		logger.Error("list summaries failed",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()))
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, DTO{
			ID:        rec.ID,
			InputText: rec.InputText,
			Summary:   rec.Summary,
			CreatedAt: rec.CreatedAt,
		})
	}

	respond.JSON(w, http.StatusOK, dtos)
}
