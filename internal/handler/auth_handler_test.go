package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/civilconsult/backend/pkg/auth"
)

func testAuthConfig() AuthConfig {
	return AuthConfig{
		Password:      "hunter2",
		SessionSecret: auth.SessionSecretBytes("test-secret"),
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.SessionCookieName() {
			return c
		}
	}
	t.Fatal("expected session cookie in response")
	return nil
}

func TestLogin_Success(t *testing.T) {
	h := NewAuthHandler(testAuthConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["success"] != true {
		t.Error("expected success true")
	}

	cookie := sessionCookie(t, rec)
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("expected SameSite Lax, got %v", cookie.SameSite)
	}
	if cookie.MaxAge != 60*60*24*7 {
		t.Errorf("expected 7-day MaxAge, got %d", cookie.MaxAge)
	}

	subject, err := auth.VerifySessionToken(cookie.Value, auth.SessionSecretBytes("test-secret"))
	if err != nil {
		t.Fatalf("expected valid token in cookie: %v", err)
	}
	if subject != auth.OperatorSubject {
		t.Errorf("expected subject %q, got %q", auth.OperatorSubject, subject)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := NewAuthHandler(testAuthConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["error"] != "invalid_password" {
		t.Errorf("unexpected error %q", got["error"])
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie on failed login")
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := NewAuthHandler(testAuthConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["error"] != "invalid_json" {
		t.Errorf("unexpected error %q", got["error"])
	}
}

func TestLogin_Unconfigured(t *testing.T) {
	h := NewAuthHandler(AuthConfig{SessionSecret: auth.SessionSecretBytes("test-secret")})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"anything"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
	if got := decodeBody(t, rec); got["error"] != "admin_auth_not_configured" {
		t.Errorf("unexpected error %q", got["error"])
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(testAuthConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	if cookie.Value != "" {
		t.Errorf("expected empty cookie value, got %q", cookie.Value)
	}
	if cookie.MaxAge >= 0 {
		t.Errorf("expected negative MaxAge to expire cookie, got %d", cookie.MaxAge)
	}
}
