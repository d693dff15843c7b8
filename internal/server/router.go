package server

import (
	"net/http"

	"github.com/solvedaily/backend/internal/identity"
)

// NewRouter wires the API routes with auth, logging and CORS middleware.
func NewRouter(api *API, verifier identity.Verifier, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/attempts/daily", api.handleStartDaily)
	mux.HandleFunc("POST /api/v1/attempts", api.handleStartAdhoc)
	mux.HandleFunc("GET /api/v1/attempts/{id}", api.handleGetAttempt)
	mux.HandleFunc("POST /api/v1/attempts/{id}/answers", api.handleSubmitAnswer)
	mux.HandleFunc("POST /api/v1/attempts/{id}/complete", api.handleComplete)
	mux.HandleFunc("GET /api/v1/wrong-notes", api.handleListWrongNotes)
	mux.HandleFunc("POST /api/v1/wrong-notes/{question_id}/resolve", api.handleResolveWrongNote)
	mux.HandleFunc("GET /api/v1/streak", api.handleStreak)
	mux.HandleFunc("GET /api/v1/activity", api.handleActivity)
	mux.HandleFunc("GET /api/v1/activity/{date}", api.handleActivityDay)

	var handler http.Handler = mux
	handler = authMiddleware(verifier)(handler)
	handler = corsMiddleware(allowedOrigins)(handler)
	handler = loggingMiddleware(handler)
	return handler
}
