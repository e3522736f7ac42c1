package impl

import (
	"context"
	"testing"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	mockRepo "avo/internal/mocks/repository"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestIdentityService_Register_InvalidEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "not-an-email",
		Password: "Password123!",
		Role:     entity.RoleUser,
	}

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidEmail))
}

func TestIdentityService_Register_VerifiedDuplicate(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "taken@example.com", IsVerified: true}
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    existing.Email,
		Password: "Password123!",
		Role:     entity.RoleUser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.otpGenerator.EXPECT().Generate().Return("123456", nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "verified account already registered"), func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestIdentityService_Register_MailFailure(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     entity.RoleUser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.otpGenerator.EXPECT().Generate().Return("123456", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
	})

	fx.mailer.EXPECT().SendOTP(ctx, input.Email, "123456").Return(errors.New("smtp unreachable"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailed))
}

func TestIdentityService_VerifyOTP_Mismatch(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	otp := "123456"
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", OTP: &otp}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: user.Email, OTP: "999999"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOTP))
	// A mismatch must leave the stored state untouched.
	assert.False(t, user.IsVerified)
	assert.NotNil(t, user.OTP)
}

func TestIdentityService_ResendOTP_AlreadyVerified(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsVerified: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	err := fx.service.ResendOTP(ctx, user.Email)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrConflict))
}

func TestIdentityService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: "hashed_password",
		IsVerified:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: user.Email, Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityService_SignIn_Unverified(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsVerified: false}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: user.Email, Password: "Password123!"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotVerified))
}

func TestIdentityService_SignIn_GoogleAccountPasswordRejected(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "google@example.com",
		HashedPassword: entity.GoogleAuthPassword,
		IsVerified:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check(entity.GoogleAuthPassword, entity.GoogleAuthPassword).Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{
		Email:    user.Email,
		Password: entity.GoogleAuthPassword,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestIdentityService_ResetPassword_WrongTokenType(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), TokenType: service.TokenTypeAuth}

	fx.tokenService.EXPECT().ValidateToken("session-token").Return(claims, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "session-token",
		NewPassword: "NewPassword123!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestIdentityService_ResetPassword_TokenNotStored(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	claims := &service.Claims{UserID: uuid.New(), TokenType: service.TokenTypeReset}

	fx.tokenService.EXPECT().ValidateToken("stale-token").Return(claims, nil)
	fx.userRepo.EXPECT().FindByAuthToken(ctx, "stale-token").Return(nil, repository.ErrUserNotFound)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "stale-token",
		NewPassword: "NewPassword123!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestIdentityService_ResetPassword_SubjectMismatch(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	token := "reset-token"
	user := &entity.User{ID: uuid.New(), AuthToken: &token}
	claims := &service.Claims{UserID: uuid.New(), TokenType: service.TokenTypeReset}

	fx.tokenService.EXPECT().ValidateToken(token).Return(claims, nil)
	fx.userRepo.EXPECT().FindByAuthToken(ctx, token).Return(user, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       token,
		NewPassword: "NewPassword123!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResetToken))
}

func TestIdentityService_UpdateProfile_NumberTaken(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com"}
	number := "9876543210"
	other := &entity.User{ID: uuid.New(), Number: &number}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().FindByNumber(ctx, number).Return(other, nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Number: &number})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNumberAlreadyExists))
}

func TestIdentityService_GoogleRegister_UnverifiedProviderEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{Email: "google@example.com", EmailVerified: false}

	fx.oauthService.EXPECT().VerifyAccessToken(ctx, "access-token").Return(oauthUser, nil)

	output, err := fx.service.GoogleRegister(ctx, &usecase.GoogleRegisterInput{AccessToken: "access-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthEmailUnverified))
}

func TestIdentityService_GoogleSignIn_TokenInvalid(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().
		VerifyAccessToken(ctx, "bad-token").
		Return(nil, errors.New("token introspection failed"))

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{AccessToken: "bad-token"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}
