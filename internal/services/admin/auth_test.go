package admin

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/requestctx"
)

func newTestKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pub, priv
}

func signSessionToken(t *testing.T, priv ed25519.PrivateKey, claims sessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func testAuthConfig(pub ed25519.PublicKey, now time.Time) *AuthConfig {
	return &AuthConfig{
		Issuer:   "chekout-auth",
		Audience: "chekout-admin",
		Key:      pub,
		Now:      func() time.Time { return now },
	}
}

func testSessionClaims(userID string, now time.Time) sessionClaims {
	return sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "chekout-auth",
			Audience:  jwt.ClaimStrings{"chekout-admin"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: userID,
	}
}

func TestRequireAuthDisabled(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	handler := requireAuth(next, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	if !called {
		t.Fatal("expected next handler to run without auth config")
	}
}

func TestRequireAuthMissingCookie(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, _ := newTestKeys(t)
	handler := requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}), testAuthConfig(pub, now))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, _ := newTestKeys(t)
	_, otherPriv := newTestKeys(t)
	token := signSessionToken(t, otherPriv, testSessionClaims("admin-1", now))

	handler := requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	}), testAuthConfig(pub, now))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthValidToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, priv := newTestKeys(t)
	token := signSessionToken(t, priv, testSessionClaims("admin-1", now))

	var gotAdminID string
	handler := requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdminID = requestctx.AdminIDFromContext(r.Context())
	}), testAuthConfig(pub, now))

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotAdminID != "admin-1" {
		t.Fatalf("admin ID = %q, want %q", gotAdminID, "admin-1")
	}
}

func TestRequireAuthStaticExempt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, _ := newTestKeys(t)
	called := false
	handler := requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), testAuthConfig(pub, now))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/admin.css", nil))

	if !called {
		t.Fatal("expected static assets to bypass auth")
	}
}

func TestValidateSessionTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, priv := newTestKeys(t)
	claims := testSessionClaims("admin-1", now.Add(-2*time.Hour))
	token := signSessionToken(t, priv, claims)

	_, err := validateSessionToken(token, testAuthConfig(pub, now))
	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
	if code := apperrors.CodeOf(err); code != apperrors.CodeSessionExpired {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSessionExpired)
	}
}

func TestValidateSessionTokenWrongAudience(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, priv := newTestKeys(t)
	claims := testSessionClaims("admin-1", now)
	claims.Audience = jwt.ClaimStrings{"chekout-storefront"}
	token := signSessionToken(t, priv, claims)

	_, err := validateSessionToken(token, testAuthConfig(pub, now))
	if err == nil {
		t.Fatal("expected token for another audience to be rejected")
	}
	if code := apperrors.CodeOf(err); code != apperrors.CodeSessionInvalid {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSessionInvalid)
	}
}

func TestValidateSessionTokenMissingUserID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pub, priv := newTestKeys(t)
	token := signSessionToken(t, priv, testSessionClaims("", now))

	_, err := validateSessionToken(token, testAuthConfig(pub, now))
	if err == nil {
		t.Fatal("expected token without user id to be rejected")
	}
}

func TestLoadAuthConfigFromEnvDisabled(t *testing.T) {
	t.Setenv("CHEKOUT_ADMIN_SESSION_ISSUER", "")
	t.Setenv("CHEKOUT_ADMIN_SESSION_AUDIENCE", "")
	t.Setenv("CHEKOUT_ADMIN_SESSION_PUBLIC_KEY", "")

	cfg, err := LoadAuthConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadAuthConfigFromEnv: %v", err)
	}
	if cfg != nil {
		t.Fatalf("config = %+v, want nil", cfg)
	}
}

func TestLoadAuthConfigFromEnvPartial(t *testing.T) {
	t.Setenv("CHEKOUT_ADMIN_SESSION_ISSUER", "chekout-auth")
	t.Setenv("CHEKOUT_ADMIN_SESSION_AUDIENCE", "")
	t.Setenv("CHEKOUT_ADMIN_SESSION_PUBLIC_KEY", "")

	if _, err := LoadAuthConfigFromEnv(nil); err == nil {
		t.Fatal("expected error for partial session config")
	}
}

func TestLoadAuthConfigFromEnvValid(t *testing.T) {
	pub, _ := newTestKeys(t)
	t.Setenv("CHEKOUT_ADMIN_SESSION_ISSUER", "chekout-auth")
	t.Setenv("CHEKOUT_ADMIN_SESSION_AUDIENCE", "chekout-admin")
	t.Setenv("CHEKOUT_ADMIN_SESSION_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pub))

	cfg, err := LoadAuthConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("LoadAuthConfigFromEnv: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.Issuer != "chekout-auth" || cfg.Audience != "chekout-admin" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.Key.Equal(pub) {
		t.Fatal("public key mismatch")
	}
}

func TestLoadAuthConfigFromEnvBadKey(t *testing.T) {
	t.Setenv("CHEKOUT_ADMIN_SESSION_ISSUER", "chekout-auth")
	t.Setenv("CHEKOUT_ADMIN_SESSION_AUDIENCE", "chekout-admin")
	t.Setenv("CHEKOUT_ADMIN_SESSION_PUBLIC_KEY", base64.StdEncoding.EncodeToString([]byte("short")))

	if _, err := LoadAuthConfigFromEnv(nil); err == nil {
		t.Fatal("expected error for undersized key")
	}
}
