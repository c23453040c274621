package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

type fakeValidator struct {
	token string
}

func (f fakeValidator) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString != f.token {
		return nil, errors.New("invalid token")
	}
	return &domain.Claims{OperatorEmail: "ops@example.com"}, nil
}

func TestAuthMiddleware(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		setup    func(r *http.Request)
		path     string
		validate func(t *testing.T, rec *httptest.ResponseRecorder, reached bool)
	}{
		{
			name: "public path skips validation",
			path: "/healthcheck",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.True(t, reached)
			},
		},
		{
			name: "valid bearer token",
			path: "/v1/provisioning/history",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.True(t, reached)
			},
		},
		{
			name: "header without bearer prefix",
			path: "/v1/provisioning/history",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "good")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.False(t, reached)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Contains(t, rec.Body.String(), "AUTH_006")
			},
		},
		{
			name: "session cookie on a page",
			path: "/campaigns/create",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.True(t, reached)
			},
		},
		{
			name: "page without session redirects to login",
			path: "/campaigns/create",
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.False(t, reached)
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/login?next=%2Fcampaigns%2Fcreate", rec.Header().Get("Location"))
			},
		},
		{
			name: "api call with expired cookie gets json error",
			path: "/api/organizations",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale"})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder, reached bool) {
				assert.False(t, reached)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.setup != nil {
				tt.setup(req)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(fakeValidator{token: "good"})(next).ServeHTTP(rec, req)
			tt.validate(t, rec, reached)
		})
	}
}

func TestOperatorOnly(t *testing.T) {
	log.SetupTestLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := AuthMiddleware(fakeValidator{token: "good"})(OperatorOnly()(next))

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	OperatorOnly()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/organizations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/organizations", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
