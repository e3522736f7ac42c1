package auth

import (
	"testing"
	"time"

	"avo/config"
	"avo/internal/domain/entity"
	"avo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_AuthTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAuthToken(userID, string(entity.RoleBusinessAdmin))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, string(entity.RoleBusinessAdmin), claims.Role)
	assert.Equal(t, service.TokenTypeAuth, claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_ResetTokenCarriesResetType(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeReset, claims.TokenType)
	assert.Empty(t, claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAuthToken(uuid.New(), string(entity.RoleUser))
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "another-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Nanosecond}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.GenerateAuthToken(uuid.New(), string(entity.RoleUser))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
