package auth

import (
	"testing"

	"avo/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPGenerator_DefaultLength(t *testing.T) {
	gen := NewOTPGenerator(&config.Config{})

	code, err := gen.Generate()
	require.NoError(t, err)
	assert.Len(t, code, defaultOTPLength)
}

func TestOTPGenerator_ConfiguredLengthAndDigits(t *testing.T) {
	gen := NewOTPGenerator(&config.Config{Auth: &config.AuthConfig{OTPLength: 6}})

	for range 20 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q contains non-digit %q", code, r)
		}
	}
}
