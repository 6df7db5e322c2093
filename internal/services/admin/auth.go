package admin

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/chekout/admin/internal/platform/errors"
	"github.com/chekout/admin/internal/platform/requestctx"
	routepath "github.com/chekout/admin/internal/services/admin/routepath"
)

// tokenCookieName is the domain-scoped cookie set by the operator login flow.
const tokenCookieName = "chk_token"

// authEnv holds raw env values before post-parse validation.
type authEnv struct {
	Issuer    string `env:"CHEKOUT_ADMIN_SESSION_ISSUER"`
	Audience  string `env:"CHEKOUT_ADMIN_SESSION_AUDIENCE"`
	PublicKey string `env:"CHEKOUT_ADMIN_SESSION_PUBLIC_KEY"`
}

// AuthConfig defines how operator session tokens are verified.
type AuthConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// sessionClaims is the internal claims type used for JWT parsing.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// LoadAuthConfigFromEnv reads session verification configuration.
//
// All three variables empty means authentication is disabled; a partial set is
// a configuration error.
func LoadAuthConfigFromEnv(now func() time.Time) (*AuthConfig, error) {
	var raw authEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse admin session env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	publicKey := strings.TrimSpace(raw.PublicKey)
	if issuer == "" && audience == "" && publicKey == "" {
		return nil, nil
	}
	if issuer == "" {
		return nil, fmt.Errorf("CHEKOUT_ADMIN_SESSION_ISSUER is required")
	}
	if audience == "" {
		return nil, fmt.Errorf("CHEKOUT_ADMIN_SESSION_AUDIENCE is required")
	}
	if publicKey == "" {
		return nil, fmt.Errorf("CHEKOUT_ADMIN_SESSION_PUBLIC_KEY is required")
	}
	keyBytes, err := decodeBase64(publicKey)
	if err != nil {
		return nil, fmt.Errorf("decode admin session public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("admin session public key must be %d bytes", ed25519.PublicKeySize)
	}
	if now == nil {
		now = time.Now
	}
	return &AuthConfig{
		Issuer:   issuer,
		Audience: audience,
		Key:      ed25519.PublicKey(keyBytes),
		Now:      now,
	}, nil
}

// requireAuth wraps next with session token verification.
//
// Static assets stay unauthenticated; everything else, the change feed
// included, requires a valid session cookie.
func requireAuth(next http.Handler, cfg *AuthConfig) http.Handler {
	if cfg == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isAuthExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(tokenCookieName)
		if err != nil || strings.TrimSpace(cookie.Value) == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		claims, err := validateSessionToken(cookie.Value, cfg)
		if err != nil {
			log.Printf("admin session rejected: %v", err)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := requestctx.WithAdminID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthExempt returns true for paths that should bypass authentication.
func isAuthExempt(path string) bool {
	return strings.HasPrefix(path, routepath.StaticPrefix)
}

// validateSessionToken verifies an EdDSA session token and returns its claims.
func validateSessionToken(token string, cfg *AuthConfig) (sessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return sessionClaims{}, apperrors.New(apperrors.CodeSessionInvalid, "session token is required")
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodEdDSA.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return cfg.Key, nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithTimeFunc(now),
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
	)
	if err != nil {
		code := apperrors.CodeSessionInvalid
		if errors.Is(err, jwt.ErrTokenExpired) {
			code = apperrors.CodeSessionExpired
		}
		return sessionClaims{}, apperrors.Wrap(code, "verify session token", err)
	}
	if strings.TrimSpace(parsed.UserID) == "" {
		return sessionClaims{}, apperrors.New(apperrors.CodeSessionInvalid, "session token has no user id")
	}
	return parsed, nil
}

func decodeBase64(value string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, encoding := range encodings {
		decoded, err := encoding.DecodeString(value)
		if err == nil {
			return decoded, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
