package service

// OTPGenerator produces the one-time codes used for email verification.
type OTPGenerator interface {
	// Generate returns a new numeric one-time code.
	Generate() (string, error)
}
