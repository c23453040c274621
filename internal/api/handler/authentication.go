package handler

import (
	"errors"
	"net/http"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

// @Summary Operator login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Credentials"
// @Success 200 {object} domain.LoginResponse
// @Failure 401 {object} apiErrors.APIError
// @Router /v1/login [post]
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request format", nil)
			return
		}

		resp, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary Current operator
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Claims
// @Failure 401 {object} apiErrors.APIError
// @Router /v1/me [get]
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.OperatorFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "operator not authenticated", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"email":      claims.OperatorEmail,
			"expires_at": claims.ExpiresAt,
		})
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "login failed", nil)
	}
}
