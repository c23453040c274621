package snapclient

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
)

func TestTokenManager_AccessToken(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/access_token", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		writeJSON(w, http.StatusOK, `{"access_token": "fresh", "expires_in": 1800}`)
	})

	_, tokenManager := newTestClient(t, mux)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tokenManager.now = func() time.Time { return now }

	token, err := tokenManager.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token, "seeded token is used while its expiry is unknown")
	assert.Equal(t, int32(0), refreshes.Load())

	tokenManager.Invalidate("token-1")

	token, err = tokenManager.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Equal(t, now.Add(25*time.Minute), tokenManager.ExpiresAt())

	now = now.Add(26 * time.Minute)
	_, err = tokenManager.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), refreshes.Load())
}

func TestTokenManager_InvalidateIgnoresOtherTokens(t *testing.T) {
	tokenManager := NewTokenManager(&config.Config{Snapchat: config.Snapchat{AccessToken: "current"}})

	tokenManager.Invalidate("older")

	token, err := tokenManager.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "current", token)
}

func TestTokenManager_MissingRefreshToken(t *testing.T) {
	tokenManager := NewTokenManager(&config.Config{})

	_, err := tokenManager.AccessToken(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRefreshToken)
}

func TestCalculateTokenExpiration(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(25*time.Minute), CalculateTokenExpiration(now, 1800))
	assert.Equal(t, now.Add(30*time.Second), CalculateTokenExpiration(now, 60))
}
