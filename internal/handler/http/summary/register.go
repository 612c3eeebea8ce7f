package summary

import (
	"net/http"

	"github.com/2003aryan/crisp-ai/internal/handler/http/auth"
	authservice "github.com/2003aryan/crisp-ai/internal/service/auth"
	sumUC "github.com/2003aryan/crisp-ai/internal/usecase/summary"
)

// Register registers all summary-related HTTP handlers with the given mux.
// Every route requires a valid bearer token.
func Register(mux *http.ServeMux, svc *sumUC.Service, tokens *authservice.TokenManager) {
	authz := auth.Authz(tokens)

	mux.Handle("POST /api/summarize", authz(SummarizeHandler{Svc: svc}))
	mux.Handle("POST /api/save-summary", authz(SaveHandler{Svc: svc}))
	mux.Handle("GET /api/summaries", authz(ListHandler{Svc: svc}))
}
