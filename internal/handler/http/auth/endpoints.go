// Package auth provides the HTTP surface for registration, login, and
// bearer-token authorization of protected endpoints.
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/handler/http/respond"
	"github.com/2003aryan/crisp-ai/internal/observability/logging"
	authservice "github.com/2003aryan/crisp-ai/internal/service/auth"
)

type registerRequest struct {
	Fullname string `json:"fullname"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// RegisterHandler creates an HTTP handler that registers a new account and
// issues a JWT for it.
func RegisterHandler(svc *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger := logging.FromContext(r.Context())

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("registration failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Password, req.Fullname)
		if err != nil {
			RecordAuthRequest("register", "failure")
			RecordAuthDuration("register", time.Since(start).Seconds())

			var ve *entity.ValidationError
			switch {
			case errors.Is(err, authservice.ErrDuplicateUser):
				logger.Warn("registration failed",
					slog.String("reason", "duplicate_username"),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				respond.SafeError(w, http.StatusBadRequest, err)
			case errors.As(err, &ve):
				logger.Warn("registration failed",
					slog.String("reason", "validation"),
					slog.String("field", ve.Field),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				respond.SafeError(w, http.StatusBadRequest, err)
			default:
				logger.Error("registration failed",
					slog.String("error", err.Error()),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				respond.SafeError(w, http.StatusInternalServerError, err)
			}
			return
		}

		logger.Info("registration successful",
			slog.String("username", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("register", "success")
		RecordAuthDuration("register", time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}

// LoginHandler creates an HTTP handler that verifies credentials and issues
// a JWT. Unknown usernames and wrong passwords produce the same response.
func LoginHandler(svc *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger := logging.FromContext(r.Context())

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			RecordAuthRequest("login", "failure")
			RecordAuthDuration("login", time.Since(start).Seconds())

			if errors.Is(err, authservice.ErrInvalidCredentials) {
				logger.Warn("authentication failed",
					slog.String("reason", "invalid_credentials"),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()))
				respond.SafeError(w, http.StatusBadRequest, err)
				return
			}
			logger.Error("authentication failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("authentication successful",
			slog.String("username", req.Username),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		RecordAuthRequest("login", "success")
		RecordAuthDuration("login", time.Since(start).Seconds())

		respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
	}
}
