// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"avo/internal/delivery/http/middleware"
	"avo/internal/delivery/http/response"
	"avo/internal/domain/entity"
	"avo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdentityHandler holds dependencies for account and session handlers.
type IdentityHandler struct {
	uc     usecase.IdentityUsecase
	logger *slog.Logger
}

// NewIdentityHandler is the constructor for IdentityHandler, injected by Fx.
func NewIdentityHandler(uc usecase.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		uc:     uc,
		logger: logger,
	}
}

type businessPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
	Logo    string `json:"logo"`
}

func (p *businessPayload) toInput() *usecase.BusinessInput {
	if p == nil {
		return nil
	}

	return &usecase.BusinessInput{
		Name:    p.Name,
		Address: p.Address,
		City:    p.City,
		State:   p.State,
		Country: p.Country,
		Pincode: p.Pincode,
		Logo:    p.Logo,
	}
}

type signUpRequest struct {
	Name     string           `json:"name" validate:"required"`
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=8"`
	Number   string           `json:"number"`
	Address  string           `json:"address"`
	Role     string           `json:"role" validate:"required,oneof=user business_admin"`
	Business *businessPayload `json:"business"`
}

// SignUp handles the account registration request.
func (h *IdentityHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Number:   req.Number,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
		Business: req.Business.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserView(output.User), "Account registered, verification code sent")
}

type emailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResendOTP handles regenerating the verification code.
func (h *IdentityHandler) ResendOTP(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// VerifyOTP handles the email verification request.
func (h *IdentityHandler) VerifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyOTP(c.Request().Context(), &usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account verified")
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles the email and password login request.
func (h *IdentityHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSignInView(output), "Sign in successful")
}

// ForgotPassword handles issuing a password reset token by mail.
func (h *IdentityHandler) ForgotPassword(c echo.Context) error {
	var req emailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset mail sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword handles setting a new password from a reset token.
func (h *IdentityHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	Number       *string `json:"number"`
	Address      *string `json:"address"`
	ProfilePhoto *string `json:"profile_photo"`
}

// UpdateProfile handles partial profile updates for the authenticated user.
func (h *IdentityHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:         req.Name,
		Number:       req.Number,
		Address:      req.Address,
		ProfilePhoto: req.ProfilePhoto,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "Profile updated")
}

type googleRegisterRequest struct {
	AccessToken string           `json:"access_token" validate:"required"`
	Name        string           `json:"name"`
	Role        string           `json:"role" validate:"omitempty,oneof=user business_admin"`
	Business    *businessPayload `json:"business"`
}

// GoogleRegister handles registration through a Google access token.
func (h *IdentityHandler) GoogleRegister(c echo.Context) error {
	var req googleRegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleRegister(c.Request().Context(), &usecase.GoogleRegisterInput{
		AccessToken: req.AccessToken,
		Name:        req.Name,
		Role:        entity.Role(req.Role),
		Business:    req.Business.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSignInView(output), "Google registration successful")
}

type googleSignInRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// GoogleSignIn handles login through a Google access token.
func (h *IdentityHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), &usecase.GoogleSignInInput{
		AccessToken: req.AccessToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSignInView(output), "Google sign in successful")
}

func toSignInView(output *usecase.SignInOutput) *signInView {
	return &signInView{
		Token:    output.Token,
		User:     toUserView(output.User),
		Business: toBusinessView(output.Business),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
