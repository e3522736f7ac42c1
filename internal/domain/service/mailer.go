package service

import "context"

// Mailer sends transactional email to users.
type Mailer interface {
	// SendOTP delivers a one-time verification code to the given address.
	SendOTP(ctx context.Context, to string, code string) error

	// SendPasswordReset delivers a password reset token to the given address.
	SendPasswordReset(ctx context.Context, to string, token string) error
}
