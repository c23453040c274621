package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	log.SetupTestLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			SecretKey:            "test-secret",
			OperatorEmail:        "ops@example.com",
			OperatorPasswordHash: string(hash),
			TokenTTL:             time.Hour,
		},
	}
	return NewService(cfg).(*Service)
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		code     string
	}{
		{name: "valid credentials", email: " OPS@example.com ", password: "s3cret"},
		{name: "missing password", email: "ops@example.com", code: apiErrors.ErrMissingRequiredData},
		{name: "wrong email", email: "other@example.com", password: "s3cret", code: apiErrors.ErrInvalidCredentials},
		{name: "wrong password", email: "ops@example.com", password: "nope", code: apiErrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(t)

			resp, err := service.Login(tt.email, tt.password)
			if tt.code != "" {
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.code, authErr.Code)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, "ops@example.com", claims.OperatorEmail)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService(t)
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	resp, err := service.Login("ops@example.com", "s3cret")
	require.NoError(t, err)

	_, err = service.ValidateToken(resp.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	now = now.Add(2 * time.Hour)
	_, err = service.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, IsAuthorizationError(err))
}
