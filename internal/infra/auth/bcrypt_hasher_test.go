package auth

import (
	"testing"

	"avo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	assert.False(t, hasher.Check("anything", "not-a-bcrypt-hash"))
}
