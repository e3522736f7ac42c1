package service

import "context"

// OAuthUser carries the identity attributes fetched from an OAuth provider.
type OAuthUser struct {
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// OAuthService verifies provider-issued access tokens and resolves them to
// the identity they belong to.
type OAuthService interface {
	// VerifyAccessToken validates the access token with the provider and
	// returns the associated user profile.
	VerifyAccessToken(ctx context.Context, accessToken string) (*OAuthUser, error)
}
