package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/civilconsult/backend/pkg/auth"
)

// AuthConfig carries the admin credential and session settings.
// Password is the plain shared secret; PasswordHash, when set, takes
// precedence and is compared with bcrypt.
type AuthConfig struct {
	Password      string
	PasswordHash  string
	SessionSecret []byte
}

// AuthHandler issues and clears the admin session. There is a single
// shared operator credential; sessions carry no per-user identity.
type AuthHandler struct {
	cfg AuthConfig
}

// NewAuthHandler creates an AuthHandler with the given config.
func NewAuthHandler(cfg AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// loginRequest is the expected JSON body for POST /api/admin/login.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login. A correct password sets the
// signed session cookie; a wrong one gets 401 with no detail beyond
// the error code.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Password == "" && h.cfg.PasswordHash == "" {
		slog.Error("admin login attempted with no credential configured")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "admin_auth_not_configured"})
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if !auth.CheckPassword(req.Password, h.cfg.Password, h.cfg.PasswordHash) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_password"})
		return
	}

	token := auth.CreateSessionToken(auth.OperatorSubject, h.cfg.SessionSecret)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
}

// Logout handles POST /api/admin/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
}
