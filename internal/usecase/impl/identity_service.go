// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"

	deliverycontext "avo/internal/delivery/context"
	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	mailer       service.Mailer
	otpGenerator service.OTPGenerator
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	Mailer       service.Mailer
	OTPGenerator service.OTPGenerator
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService. It receives all dependencies as interfaces.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		mailer:       params.Mailer,
		otpGenerator: params.OTPGenerator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process. A verified
// duplicate email conflicts; an unverified duplicate is re-registered in
// place, including a role flip when the requested role differs.
func (srv *identityService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", input.Role), slog.String("email", input.Email))

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "registration rejected")
	}
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	otp, err := srv.otpGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate OTP")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		businessRepo := repoFactory.BusinessRepo()

		existing, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up email")
		}

		if existing == nil {
			return srv.registerNewAccount(ctx, userRepo, businessRepo, input, hashedPassword, otp, &registeredUser)
		}

		if existing.IsVerified {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "verified account already registered")
		}

		return srv.reRegisterUnverifiedAccount(ctx, userRepo, businessRepo, existing, input, hashedPassword, otp, &registeredUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.mailer.SendOTP(ctx, registeredUser.Email, otp); err != nil {
		srv.log(ctx).Error("Failed to send OTP mail", slog.String("email", registeredUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed, "failed to send verification mail")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *identityService) registerNewAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	input *usecase.RegisterInput,
	hashedPassword, otp string,
	registeredUser **entity.User,
) error {
	newUser := &entity.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: hashedPassword,
		Address:        input.Address,
		Role:           input.Role,
		OTP:            &otp,
	}
	if input.Number != "" {
		number := input.Number
		newUser.Number = &number
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return translateUserPersistenceError(err)
	}

	if input.Role == entity.RoleBusinessAdmin {
		business := buildBusinessEntity(newUser.ID, input.Business)
		if err := businessRepo.Create(ctx, business); err != nil {
			return errors.Wrap(err, "failed to create business during registration")
		}

		newUser.BusinessID = &business.ID
		if err := userRepo.Update(ctx, newUser); err != nil {
			return translateUserPersistenceError(err)
		}
	}

	*registeredUser = newUser

	return nil
}

// reRegisterUnverifiedAccount overwrites an unverified account in place.
// Flipping business_admin down to user deletes the dangling business row;
// flipping user up to business_admin upserts one.
func (srv *identityService) reRegisterUnverifiedAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	businessRepo repository.BusinessRepository,
	existing *entity.User,
	input *usecase.RegisterInput,
	hashedPassword, otp string,
	registeredUser **entity.User,
) error {
	if existing.Role == entity.RoleBusinessAdmin && input.Role == entity.RoleUser {
		if err := businessRepo.DeleteByOwnerID(ctx, existing.ID); err != nil {
			return errors.Wrap(err, "failed to delete business during role flip")
		}
		existing.BusinessID = nil
	}

	existing.Name = input.Name
	existing.HashedPassword = hashedPassword
	existing.Address = input.Address
	existing.Role = input.Role
	existing.OTP = &otp
	existing.IsVerified = false
	if input.Number != "" {
		number := input.Number
		existing.Number = &number
	}

	if input.Role == entity.RoleBusinessAdmin {
		business, err := businessRepo.FindByOwnerID(ctx, existing.ID)
		if errors.Is(err, repository.ErrBusinessNotFound) {
			business = buildBusinessEntity(existing.ID, input.Business)
			if err := businessRepo.Create(ctx, business); err != nil {
				return errors.Wrap(err, "failed to create business during re-registration")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to look up business during re-registration")
		} else {
			applyBusinessInput(business, input.Business)
			if err := businessRepo.Update(ctx, business); err != nil {
				return errors.Wrap(err, "failed to update business during re-registration")
			}
		}

		existing.BusinessID = &business.ID
	}

	if err := userRepo.Update(ctx, existing); err != nil {
		return translateUserPersistenceError(err)
	}

	srv.log(ctx).Debug("Re-registered unverified account", slog.Any("userID", existing.ID), slog.Any("role", input.Role))
	*registeredUser = existing

	return nil
}

// ResendOTP regenerates and re-sends the verification code for an
// unverified account.
func (srv *identityService) ResendOTP(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "resend OTP failed")
		}

		return errors.Wrap(err, "failed to find user for OTP resend")
	}

	if user.IsVerified {
		return errors.Wrap(domainerrors.ErrConflict, "account already verified")
	}

	otp, err := srv.otpGenerator.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate OTP")
	}

	user.OTP = &otp
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store regenerated OTP")
	}

	if err := srv.mailer.SendOTP(ctx, user.Email, otp); err != nil {
		srv.log(ctx).Error("Failed to resend OTP mail", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUpstreamFailed, "failed to send verification mail")
	}

	return nil
}

// VerifyOTP checks the submitted code against the stored one. A mismatch
// never mutates verification state.
func (srv *identityService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "OTP verification failed")
		}

		return errors.Wrap(err, "failed to find user for OTP verification")
	}

	if user.OTP == nil || *user.OTP != input.OTP {
		srv.log(ctx).Warn("OTP mismatch", slog.String("email", input.Email))

		return errors.Wrap(domainerrors.ErrInvalidOTP, "OTP verification failed")
	}

	user.OTP = nil
	user.IsVerified = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to mark account verified")
	}

	srv.log(ctx).Info("Account verified", slog.Any("userID", user.ID))

	return nil
}

// SignIn authenticates by email and password and issues a session token,
// persisted alongside the account.
func (srv *identityService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "sign in failed")
		}

		return nil, errors.Wrap(err, "failed to find user for sign in")
	}

	if !user.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrAccountNotVerified, "sign in failed")
	}

	// Provider-created accounts store a sentinel instead of a bcrypt hash,
	// so this comparison can never pass for them.
	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Sign in failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign in failed")
	}

	return srv.issueSession(ctx, user)
}

// ForgotPassword issues a short-lived single-use reset token and mails it.
func (srv *identityService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "forgot password failed")
		}

		return errors.Wrap(err, "failed to find user for password reset")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	user.AuthToken = &token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	if err := srv.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUpstreamFailed, "failed to send reset mail")
	}

	return nil
}

// ResetPassword accepts a reset token only when it both verifies
// cryptographically and is still the token stored on the account. Clearing
// the stored token afterwards makes it single use.
func (srv *identityService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateToken(input.Token)
	if err != nil || claims.TokenType != service.TokenTypeReset {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token rejected")
	}

	user, err := srv.userRepo.FindByAuthToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token not active")
		}

		return errors.Wrap(err, "failed to find user by reset token")
	}

	if user.ID != claims.UserID {
		return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token subject mismatch")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	user.HashedPassword = hashedPassword
	user.AuthToken = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// UpdateProfile partially updates the caller's own profile fields.
func (srv *identityService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find user for profile update")
	}

	if input.Number != nil && (user.Number == nil || *user.Number != *input.Number) {
		other, err := srv.userRepo.FindByNumber(ctx, *input.Number)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check number uniqueness")
		}
		if other != nil && other.ID != user.ID {
			return nil, errors.Wrap(domainerrors.ErrNumberAlreadyExists, "profile update failed")
		}
		user.Number = input.Number
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.ProfilePhoto != nil {
		user.ProfilePhoto = *input.ProfilePhoto
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateUserPersistenceError(err)
	}

	return user, nil
}

// GoogleRegister creates (or upgrades) an account from a verified provider
// identity. The account stores a sentinel password and is verified
// immediately; no OTP round trip.
func (srv *identityService) GoogleRegister(ctx context.Context, input *usecase.GoogleRegisterInput) (*usecase.SignInOutput, error) {
	oauthUser, err := srv.verifyProviderToken(ctx, input.AccessToken)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if !role.IsValid() {
		role = entity.RoleUser
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		businessRepo := repoFactory.BusinessRepo()

		existing, findErr := userRepo.FindByEmail(ctx, oauthUser.Email)
		if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to look up provider email")
		}
		if existing != nil && existing.IsVerified {
			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "verified account already registered")
		}

		name := input.Name
		if name == "" {
			name = oauthUser.Name
		}

		registerInput := &usecase.RegisterInput{
			Name:     name,
			Email:    oauthUser.Email,
			Role:     role,
			Business: input.Business,
		}

		if existing == nil {
			if err := srv.registerNewAccount(ctx, userRepo, businessRepo, registerInput, entity.GoogleAuthPassword, "", &registeredUser); err != nil {
				return err
			}
		} else {
			if err := srv.reRegisterUnverifiedAccount(ctx, userRepo, businessRepo, existing, registerInput, entity.GoogleAuthPassword, "", &registeredUser); err != nil {
				return err
			}
		}

		// Provider already verified the email; skip the OTP round trip.
		registeredUser.OTP = nil
		registeredUser.IsVerified = true
		if registeredUser.ProfilePhoto == "" {
			registeredUser.ProfilePhoto = oauthUser.Picture
		}

		return userRepo.Update(ctx, registeredUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Google registration failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.issueSession(ctx, registeredUser)
}

// GoogleSignIn mirrors SignIn with the provider vouching for the identity
// instead of a password check.
func (srv *identityService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.SignInOutput, error) {
	oauthUser, err := srv.verifyProviderToken(ctx, input.AccessToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, oauthUser.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "google sign in failed")
		}

		return nil, errors.Wrap(err, "failed to find user for google sign in")
	}

	if !user.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrAccountNotVerified, "google sign in failed")
	}

	return srv.issueSession(ctx, user)
}

// issueSession generates a session token, persists it on the account and
// attaches the owned business for business admins.
func (srv *identityService) issueSession(ctx context.Context, user *entity.User) (*usecase.SignInOutput, error) {
	token, err := srv.tokenService.GenerateAuthToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	user.AuthToken = &token
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to persist session token")
	}

	output := &usecase.SignInOutput{
		Token: token,
		User:  user,
	}

	if user.IsBusinessAdmin() {
		business, err := srv.businessRepo.FindByOwnerID(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(err, "failed to load business for session")
		}
		output.Business = business
	}

	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID), slog.Any("role", user.Role))

	return output, nil
}

func (srv *identityService) verifyProviderToken(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	oauthUser, err := srv.oauthService.VerifyAccessToken(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Provider token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "provider token rejected")
	}
	if !oauthUser.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthEmailUnverified, "provider email not verified")
	}

	return oauthUser, nil
}

func buildBusinessEntity(ownerID uuid.UUID, input *usecase.BusinessInput) *entity.Business {
	business := &entity.Business{OwnerID: ownerID}
	applyBusinessInput(business, input)

	return business
}

func applyBusinessInput(business *entity.Business, input *usecase.BusinessInput) {
	if input == nil {
		return
	}

	business.Name = input.Name
	business.Address = input.Address
	business.City = input.City
	business.State = input.State
	business.Country = input.Country
	business.Pincode = input.Pincode
	business.Logo = input.Logo
}

// translateUserPersistenceError maps repository sentinels onto the
// application error taxonomy.
func translateUserPersistenceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email constraint violated")
	case errors.Is(err, repository.ErrDuplicateNumber):
		return errors.Wrap(domainerrors.ErrNumberAlreadyExists, "number constraint violated")
	default:
		return errors.Wrap(err, "user persistence failed")
	}
}
