// Package validator adapts go-playground validation to Echo's Validator hook.
package validator

import (
	domainerrors "avo/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo.Echo#Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate runs struct tag validation and maps failures onto the
// application error taxonomy so the error handler renders a 400 envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
