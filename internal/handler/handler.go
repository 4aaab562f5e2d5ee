package handler

import "net/http"

// Handler carries cross-cutting HTTP concerns (CORS, health).
type Handler struct {
	frontendURL string
}

// New creates a Handler allowing the given frontend origin.
func New(frontendURL string) *Handler {
	return &Handler{frontendURL: frontendURL}
}

// CORS allows the configured frontend origin and answers preflight
// requests directly.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
