package auth

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"

	"avo/config"
	"avo/internal/domain/service"
)

const defaultOTPLength = 4

// otpGenerator produces numeric one-time codes from a CSPRNG.
type otpGenerator struct {
	length int
}

// NewOTPGenerator is the constructor for otpGenerator.
func NewOTPGenerator(cfg *config.Config) service.OTPGenerator {
	length := defaultOTPLength
	if cfg.Auth != nil && cfg.Auth.OTPLength > 0 {
		length = cfg.Auth.OTPLength
	}

	return &otpGenerator{length: length}
}

// Generate returns a zero-padded numeric code of the configured length.
func (g *otpGenerator) Generate() (string, error) {
	digits := make([]byte, g.length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		digits[i] = byte('0' + n.Int64())
	}

	return string(digits), nil
}
