package snapclient

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

var ErrMissingRefreshToken = errors.New("snapchat refresh token not configured")

// TokenManager keeps the OAuth access token used by the client
type TokenManager struct {
	cfg        *config.Config
	httpClient *http.Client
	now        func() time.Time

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time

	refreshGroup singleflight.Group
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
		accessToken:  cfg.Snapchat.AccessToken,
		refreshToken: cfg.Snapchat.RefreshToken,
	}
}

// AccessToken returns a usable token, refreshing it when missing or close to expiry.
// A token seeded from configuration has no known expiry and is used until rejected.
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	tm.mu.RLock()
	token, expiresAt := tm.accessToken, tm.expiresAt
	tm.mu.RUnlock()

	if token != "" && (expiresAt.IsZero() || tm.now().Before(expiresAt)) {
		return token, nil
	}

	if err := tm.RefreshToken(ctx); err != nil {
		return "", err
	}

	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.accessToken, nil
}

// RefreshToken fetches a new access token. Concurrent callers share one request.
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	_, err, shared := tm.refreshGroup.Do("refresh", func() (any, error) {
		tm.mu.RLock()
		refreshToken := tm.refreshToken
		tm.mu.RUnlock()

		tokenResp, err := RequestAccessToken(
			context.WithoutCancel(ctx),
			tm.httpClient,
			tm.cfg.Snapchat.AuthURL,
			tm.cfg.Snapchat.ClientID,
			tm.cfg.Snapchat.ClientSecret,
			refreshToken,
		)
		if err != nil {
			return nil, err
		}

		tm.mu.Lock()
		tm.accessToken = tokenResp.AccessToken
		tm.expiresAt = CalculateTokenExpiration(tm.now(), tokenResp.ExpiresIn)
		if tokenResp.RefreshToken != "" {
			tm.refreshToken = tokenResp.RefreshToken
		}
		expiresAt := tm.expiresAt
		tm.mu.Unlock()

		log.ForContext(ctx).Infof("snapchat: access token refreshed, valid until %s", expiresAt.Format(time.RFC3339))
		return nil, nil
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("snapchat: token refresh failed")
		return errors.Wrap(err, "refresh snapchat token")
	}
	if shared {
		log.ForContext(ctx).Debug("snapchat: joined in-flight token refresh")
	}
	return nil
}

// Invalidate drops stale if it is still the current token
func (tm *TokenManager) Invalidate(stale string) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	if tm.accessToken == stale {
		tm.accessToken = ""
		tm.expiresAt = time.Time{}
	}
}

// ExpiresAt is zero when the expiry is unknown
func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}
