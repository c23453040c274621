package snapclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TokenResponse is the OAuth token endpoint answer
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
}

// RequestAccessToken exchanges a refresh token for a new access token
func RequestAccessToken(ctx context.Context, httpClient *http.Client, authURL, clientID, clientSecret, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, ErrMissingRefreshToken
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", clientID)
	form.Set("client_secret", clientSecret)
	form.Set("refresh_token", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request access token")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read token response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("token endpoint status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, errors.Wrap(err, "decode token response")
	}

	if tokenResp.AccessToken == "" {
		return nil, errors.New("token endpoint returned an empty access token")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration keeps a safety margin before the real expiry
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	lifetime := time.Duration(expiresIn) * time.Second
	margin := 5 * time.Minute
	if lifetime <= 2*margin {
		margin = lifetime / 2
	}
	return now.Add(lifetime - margin)
}
