package usecase

import (
	"context"
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTransactionInput defines the data for a new transaction record.
type CreateTransactionInput struct {
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	CouponID   *uuid.UUID
	Amount     float64
	Status     entity.TransactionStatus
	Note       string
}

// ListTransactionsInput narrows the transaction listing. Nil fields are ignored.
type ListTransactionsInput struct {
	UserID     *uuid.UUID
	BusinessID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// UpdateTransactionInput is a partial correction of an existing record.
// Nil fields are left untouched. There is no delete operation.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	Amount        *float64
	Status        *entity.TransactionStatus
	Note          *string
}

// TransactionUsecase defines the append-mostly transaction log operations.
type TransactionUsecase interface {
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListTransactions(ctx context.Context, input *ListTransactionsInput) ([]*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, input *UpdateTransactionInput) (*entity.Transaction, error)
}
