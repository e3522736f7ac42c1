package impl

import (
	"context"
	"testing"

	"avo/internal/domain/entity"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	mockRepo "avo/internal/mocks/repository"
	mockSvc "avo/internal/mocks/service"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	t            *testing.T
	service      usecase.IdentityUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthService *mockSvc.MockOAuthService
	mailer       *mockSvc.MockMailer
	otpGenerator *mockSvc.MockOTPGenerator
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthService(t)
	mailer := mockSvc.NewMockMailer(t)
	otpGenerator := mockSvc.NewMockOTPGenerator(t)

	svc := NewIdentityService(IdentityServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		OAuthService: oauthService,
		Mailer:       mailer,
		OTPGenerator: otpGenerator,
		Logger:       newDiscardLogger(),
	})

	return identityServiceFixtures{
		t:            t,
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
		mailer:       mailer,
		otpGenerator: otpGenerator,
	}
}

// onExecute stubs a transaction: setup configures the repositories the
// closure will ask the factory for, result is what Execute reports back.
func (f identityServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestIdentityService_Register_NewUser_Success(t *testing.T) {
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

	fx.mailer.EXPECT().SendOTP(ctx, input.Email, "123456").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.HashedPassword)
	assert.False(t, output.User.IsVerified)
	require.NotNil(t, output.User.OTP)
	assert.Equal(t, "123456", *output.User.OTP)
}

func TestIdentityService_Register_BusinessAdmin_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Owner",
		Email:    "owner@example.com",
		Password: "Password123!",
		Role:     entity.RoleBusinessAdmin,
		Business: &usecase.BusinessInput{Name: "Avo Cafe", City: "Pune"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.otpGenerator.EXPECT().Generate().Return("654321", nil)

	businessID := uuid.New()
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
		mockBusinessRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Business")).
			Run(func(ctx context.Context, business *entity.Business) {
				assert.Equal(t, "Avo Cafe", business.Name)
				business.ID = businessID
			}).
			Return(nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	fx.mailer.EXPECT().SendOTP(ctx, input.Email, "654321").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.BusinessID)
	assert.Equal(t, businessID, *output.User.BusinessID)
	assert.Equal(t, entity.RoleBusinessAdmin, output.User.Role)
}

func TestIdentityService_Register_UnverifiedAdminFlipsToUser(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	existingID := uuid.New()
	businessID := uuid.New()
	existing := &entity.User{
		ID:         existingID,
		Email:      "flip@example.com",
		Role:       entity.RoleBusinessAdmin,
		IsVerified: false,
		BusinessID: &businessID,
	}
	input := &usecase.RegisterInput{
		Name:     "Flipped",
		Email:    existing.Email,
		Password: "Password123!",
		Role:     entity.RoleUser,
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)
	fx.otpGenerator.EXPECT().Generate().Return("111222", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
		mockBusinessRepo.EXPECT().DeleteByOwnerID(ctx, existingID).Return(nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, entity.RoleUser, user.Role)
				assert.Nil(t, user.BusinessID)
				assert.False(t, user.IsVerified)
			}).
			Return(nil)
	})

	fx.mailer.EXPECT().SendOTP(ctx, existing.Email, "111222").Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Nil(t, output.User.BusinessID)
	assert.Equal(t, "new_hash", output.User.HashedPassword)
}

func TestIdentityService_VerifyOTP_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	otp := "123456"
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", OTP: &otp}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.True(t, updated.IsVerified)
			assert.Nil(t, updated.OTP)
		}).
		Return(nil)

	err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: user.Email, OTP: "123456"})

	require.NoError(t, err)
}

func TestIdentityService_SignIn_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "test@example.com",
		HashedPassword: "hashed_password",
		Role:           entity.RoleUser,
		IsVerified:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateAuthToken(user.ID, "user").Return("session-token", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			require.NotNil(t, updated.AuthToken)
			assert.Equal(t, "session-token", *updated.AuthToken)
		}).
		Return(nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Nil(t, output.Business)
}

func TestIdentityService_SignIn_BusinessAdmin_AttachesBusiness(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "owner@example.com",
		HashedPassword: "hashed_password",
		Role:           entity.RoleBusinessAdmin,
		IsVerified:     true,
	}
	business := &entity.Business{ID: uuid.New(), OwnerID: user.ID, Name: "Avo Cafe"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateAuthToken(user.ID, "business_admin").Return("session-token", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.businessRepo.EXPECT().FindByOwnerID(ctx, user.ID).Return(business, nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	require.NotNil(t, output.Business)
	assert.Equal(t, business.ID, output.Business.ID)
}

func TestIdentityService_ForgotPassword_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", IsVerified: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.tokenService.EXPECT().GenerateResetToken(user.ID).Return("reset-token", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			require.NotNil(t, updated.AuthToken)
			assert.Equal(t, "reset-token", *updated.AuthToken)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendPasswordReset(ctx, user.Email, "reset-token").Return(nil)

	err := fx.service.ForgotPassword(ctx, user.Email)

	require.NoError(t, err)
}

func TestIdentityService_ResetPassword_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	token := "reset-token"
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", AuthToken: &token}
	claims := &service.Claims{UserID: userID, TokenType: service.TokenTypeReset}

	fx.tokenService.EXPECT().ValidateToken(token).Return(claims, nil)
	fx.userRepo.EXPECT().FindByAuthToken(ctx, token).Return(user, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, updated *entity.User) {
			assert.Equal(t, "new_hash", updated.HashedPassword)
			assert.Nil(t, updated.AuthToken)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: token, NewPassword: "NewPassword123!"})

	require.NoError(t, err)
}

func TestIdentityService_UpdateProfile_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "test@example.com", Name: "Old Name"}
	newName := "New Name"
	newNumber := "9876543210"

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().FindByNumber(ctx, newNumber).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:   &newName,
		Number: &newNumber,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	require.NotNil(t, updated.Number)
	assert.Equal(t, newNumber, *updated.Number)
}

func TestIdentityService_GoogleRegister_NewUser_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		Email:         "google@example.com",
		EmailVerified: true,
		Name:          "Google User",
		Picture:       "https://example.com/photo.jpg",
	}

	fx.oauthService.EXPECT().VerifyAccessToken(ctx, "access-token").Return(oauthUser, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().BusinessRepo().Return(mockBusinessRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.True(t, user.IsVerified)
				assert.Nil(t, user.OTP)
				assert.Equal(t, oauthUser.Picture, user.ProfilePhoto)
			}).
			Return(nil)
	})

	fx.tokenService.EXPECT().
		GenerateAuthToken(mock.AnythingOfType("uuid.UUID"), "user").
		Return("session-token", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.GoogleRegister(ctx, &usecase.GoogleRegisterInput{AccessToken: "access-token"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, entity.GoogleAuthPassword, output.User.HashedPassword)
	assert.True(t, output.User.IsVerified)
}

func TestIdentityService_GoogleSignIn_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{Email: "google@example.com", EmailVerified: true}
	user := &entity.User{
		ID:             uuid.New(),
		Email:          oauthUser.Email,
		HashedPassword: entity.GoogleAuthPassword,
		Role:           entity.RoleUser,
		IsVerified:     true,
	}

	fx.oauthService.EXPECT().VerifyAccessToken(ctx, "access-token").Return(oauthUser, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, oauthUser.Email).Return(user, nil)
	fx.tokenService.EXPECT().GenerateAuthToken(user.ID, "user").Return("session-token", nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{AccessToken: "access-token"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}
