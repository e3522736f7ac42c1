package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"avo/config"
	"avo/internal/domain/service"
)

const (
	defaultTokenTTL      = time.Hour * 24
	defaultResetTokenTTL = time.Minute * 15
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing tokens.
	tokenTTL time.Duration // Time-to-live for session tokens.
	resetTTL time.Duration // Time-to-live for password reset tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	tokenTTL := defaultTokenTTL
	resetTTL := defaultResetTokenTTL
	if cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			tokenTTL = cfg.Auth.TokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: tokenTTL,
		resetTTL: resetTTL,
	}, nil
}

// GenerateAuthToken creates a session token for an authenticated user.
func (s *jwtService) GenerateAuthToken(userID uuid.UUID, role string) (string, error) {
	return s.generateToken(userID, role, s.tokenTTL, service.TokenTypeAuth)
}

// GenerateResetToken creates a short-lived token authorizing a single password reset.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.generateToken(userID, "", s.resetTTL, service.TokenTypeReset)
}

// ValidateToken checks the signature and expiry of a token string and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, role string, ttl time.Duration, tokenType service.TokenType) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
