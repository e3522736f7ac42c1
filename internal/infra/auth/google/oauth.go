// Package google verifies Google-issued OAuth access tokens.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"avo/config"
	"avo/internal/domain/service"
)

// OAuthService resolves Google access tokens to the profile they belong to.
type OAuthService struct {
	clientID string
	logger   *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &OAuthService{
		clientID: clientID,
		logger:   logger,
	}
}

// VerifyAccessToken calls the Google userinfo endpoint with the given access
// token and returns the profile it resolves to. An invalid or expired token
// is rejected by Google and surfaces here as an error.
func (s *OAuthService) VerifyAccessToken(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	if accessToken == "" {
		return nil, errors.New("access token is empty")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := goauth2.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, errors.Wrap(err, "create oauth2 service")
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		s.logger.Warn("Google userinfo lookup failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "fetch userinfo")
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail

	return &service.OAuthUser{
		Email:         info.Email,
		EmailVerified: verified,
		Name:          info.Name,
		Picture:       info.Picture,
	}, nil
}
