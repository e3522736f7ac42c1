package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes long-lived session tokens from the short-lived
// single-use tokens issued for password resets.
type TokenType string

const (
	TokenTypeAuth  TokenType = "auth"
	TokenTypeReset TokenType = "reset"
)

// Claims represents the claims embedded in a signed token.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating signed tokens.
type TokenService interface {
	// GenerateAuthToken creates a session token for an authenticated user.
	GenerateAuthToken(userID uuid.UUID, role string) (string, error)

	// GenerateResetToken creates a short-lived token used to authorize a
	// single password reset.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its claims.
	ValidateToken(token string) (*Claims, error)
}
