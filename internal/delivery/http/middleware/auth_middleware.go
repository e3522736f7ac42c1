package middleware

import (
	"strings"

	"avo/internal/delivery/http/response"
	"avo/internal/domain/entity"
	"avo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated principal is stored.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// Reset tokens are signed with the same key but carry a different token type
// and are never accepted as a session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		if claims.TokenType != service.TokenTypeAuth {
			return response.Unauthorized(c, "UNAUTHORIZED", "Token is not a session token")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireBusinessAdmin restricts a route to business-admin accounts.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireBusinessAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get(ContextKeyRole).(string)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
		}

		if role != entity.RoleBusinessAdmin.String() {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: business admin role required")
		}

		return next(c)
	}
}

// UserID extracts the authenticated user's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}
