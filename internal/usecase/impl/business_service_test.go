package impl

import (
	"context"
	"testing"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	mockRepo "avo/internal/mocks/repository"
	mockSvc "avo/internal/mocks/service"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	t            *testing.T
	service      usecase.BusinessUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	businessRepo *mockRepo.MockBusinessRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	svc := NewBusinessService(BusinessServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		BusinessRepo: businessRepo,
		Hasher:       hasher,
		Logger:       newDiscardLogger(),
	})

	return businessServiceFixtures{
		t:            t,
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		hasher:       hasher,
	}
}

func (f businessServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

func TestBusinessService_AddEmployee_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	input := &usecase.AddEmployeeInput{
		Name:     "Clerk",
		Email:    "clerk@example.com",
		Password: "Password123!",
		Number:   "9876543210",
	}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, employee *entity.User) {
			assert.Equal(t, entity.RoleUser, employee.Role)
			assert.True(t, employee.IsVerified)
			require.NotNil(t, employee.BusinessID)
			assert.Equal(t, business.ID, *employee.BusinessID)
			employee.ID = uuid.New()
		}).
		Return(nil)

	employee, err := fx.service.AddEmployee(ctx, adminID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, employee.Email)
	require.NotNil(t, employee.Number)
	assert.Equal(t, input.Number, *employee.Number)
}

func TestBusinessService_AddEmployee_DuplicateEmail(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	input := &usecase.AddEmployeeInput{
		Name:     "Clerk",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	employee, err := fx.service.AddEmployee(ctx, adminID, input)

	assert.Error(t, err)
	assert.Nil(t, employee)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestBusinessService_GetUserByID_CrossBusiness(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	otherBusinessID := uuid.New()
	stranger := &entity.User{ID: uuid.New(), BusinessID: &otherBusinessID}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.userRepo.EXPECT().FindByID(ctx, stranger.ID).Return(stranger, nil)

	user, err := fx.service.GetUserByID(ctx, adminID, stranger.ID)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_ListEmployees_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	employees := []*entity.User{
		{ID: uuid.New(), Name: "Clerk A", BusinessID: &business.ID},
		{ID: uuid.New(), Name: "Clerk B", BusinessID: &business.ID},
	}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.userRepo.EXPECT().ListEmployeesByBusiness(ctx, business.ID, adminID).Return(employees, nil)

	result, err := fx.service.ListEmployees(ctx, adminID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBusinessService_UpdateEmployee_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	employee := &entity.User{ID: uuid.New(), Name: "Old Name", BusinessID: &business.ID}
	newName := "New Name"

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.userRepo.EXPECT().FindByID(ctx, employee.ID).Return(employee, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := fx.service.UpdateEmployee(ctx, adminID, &usecase.UpdateEmployeeInput{
		EmployeeID: employee.ID,
		Name:       &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
}

func TestBusinessService_DeleteEmployees_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().DeleteEmployees(ctx, business.ID, ids).Return(int64(2), nil)
	})

	deleted, err := fx.service.DeleteEmployees(ctx, adminID, ids)

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestBusinessService_DeleteEmployees_EmptyInput(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()

	deleted, err := fx.service.DeleteEmployees(ctx, uuid.New(), nil)

	assert.Error(t, err)
	assert.Zero(t, deleted)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBusinessService_UpdateBusiness_Success(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID, Name: "Old Name", City: "Pune"}
	newName := "New Name"

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.businessRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

	updated, err := fx.service.UpdateBusiness(ctx, adminID, &usecase.UpdateBusinessInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Pune", updated.City)
}
