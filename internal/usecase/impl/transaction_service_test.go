package impl

import (
	"context"
	"testing"
	"time"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	mockRepo "avo/internal/mocks/repository"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionServiceFixtures struct {
	service         usecase.TransactionUsecase
	transactionRepo *mockRepo.MockTransactionRepository
}

func createTestTransactionService(t *testing.T) transactionServiceFixtures {
	transactionRepo := mockRepo.NewMockTransactionRepository(t)

	svc := NewTransactionService(TransactionServiceParams{
		TransactionRepo: transactionRepo,
		Logger:          newDiscardLogger(),
	})

	return transactionServiceFixtures{
		service:         svc,
		transactionRepo: transactionRepo,
	}
}

func TestTransactionService_CreateTransaction_DefaultsToPending(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	input := &usecase.CreateTransactionInput{
		UserID: uuid.New(),
		Amount: 199.50,
		Note:   "lunch order",
	}

	fx.transactionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(ctx context.Context, txn *entity.Transaction) {
			txn.ID = uuid.New()
		}).
		Return(nil)

	txn, err := fx.service.CreateTransaction(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusPending, txn.Status)
	assert.Equal(t, 199.50, txn.Amount)
}

func TestTransactionService_CreateTransaction_UnknownStatus(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	input := &usecase.CreateTransactionInput{
		UserID: uuid.New(),
		Amount: 10,
		Status: entity.TransactionStatus("settled"),
	}

	txn, err := fx.service.CreateTransaction(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransactionService_CreateTransaction_NegativeAmount(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	input := &usecase.CreateTransactionInput{
		UserID: uuid.New(),
		Amount: -5,
	}

	txn, err := fx.service.CreateTransaction(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTransactionService_GetTransaction_NotFound(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.transactionRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTransactionNotFound)

	txn, err := fx.service.GetTransaction(ctx, id)

	assert.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionNotFound))
}

func TestTransactionService_ListTransactions_MapsFilter(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	records := []*entity.Transaction{{ID: uuid.New(), UserID: userID}}

	fx.transactionRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.TransactionFilter")).
		Run(func(ctx context.Context, filter repository.TransactionFilter) {
			require.NotNil(t, filter.UserID)
			assert.Equal(t, userID, *filter.UserID)
			require.NotNil(t, filter.BusinessID)
			assert.Equal(t, businessID, *filter.BusinessID)
			require.NotNil(t, filter.From)
			assert.Equal(t, from, *filter.From)
			assert.Nil(t, filter.To)
		}).
		Return(records, nil)

	result, err := fx.service.ListTransactions(ctx, &usecase.ListTransactionsInput{
		UserID:     &userID,
		BusinessID: &businessID,
		From:       &from,
	})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestTransactionService_UpdateTransaction_PartialStatusCorrection(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	existing := &entity.Transaction{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Amount: 42,
		Status: entity.TransactionStatusPending,
		Note:   "original note",
	}
	completed := entity.TransactionStatusCompleted

	fx.transactionRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.transactionRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Transaction")).Return(nil)

	txn, err := fx.service.UpdateTransaction(ctx, &usecase.UpdateTransactionInput{
		TransactionID: existing.ID,
		Status:        &completed,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, float64(42), txn.Amount)
	assert.Equal(t, "original note", txn.Note)
}

func TestTransactionService_UpdateTransaction_NegativeAmount(t *testing.T) {
	fx := createTestTransactionService(t)

	ctx := context.Background()
	existing := &entity.Transaction{ID: uuid.New(), Amount: 42, Status: entity.TransactionStatusPending}
	negative := -1.0

	fx.transactionRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

	txn, err := fx.service.UpdateTransaction(ctx, &usecase.UpdateTransactionInput{
		TransactionID: existing.ID,
		Amount:        &negative,
	})

	assert.Error(t, err)
	assert.Nil(t, txn)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
