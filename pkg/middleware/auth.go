package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

type contextKey string

const (
	ContextKeyOperator contextKey = "operator"

	// SessionCookie holds the JWT of the web pages
	SessionCookie = "session"
	LoginPath     = "/login"
)

// TokenValidator checks a session token
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

var publicPaths = map[string]struct{}{
	"/v1/login":    {},
	"/healthcheck": {},
	LoginPath:      {},
}

func AuthMiddleware(authService TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := publicPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, fromHeader := tokenFromRequest(r)
			if tokenString == "" {
				deny(w, r, fromHeader, apiErrors.ErrInvalidToken, "bearer token is required")
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Debug("auth: token rejected")
				deny(w, r, fromHeader, apiErrors.ErrInvalidToken, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyOperator, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext returns the claims set by AuthMiddleware
func OperatorFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyOperator).(*domain.Claims)
	return claims, ok
}

// tokenFromRequest prefers the Authorization header, then the session cookie
func tokenFromRequest(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return "", true
		}
		return tokenString, true
	}

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value, false
	}
	return "", false
}

// deny answers API calls with a JSON error and sends browsers to the login page
func deny(w http.ResponseWriter, r *http.Request, fromHeader bool, code, message string) {
	if fromHeader || isAPIPath(r.URL.Path) {
		apiErrors.WriteError(w, code, message, nil)
		return
	}

	target := LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/v1/")
}
