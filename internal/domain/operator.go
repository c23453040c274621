package domain

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Claims identify the operator session
type Claims struct {
	OperatorEmail string `json:"operator_email"`
	jwt.RegisteredClaims
}
