package repository

import (
	"context"
	"errors"
	"time"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a transaction record is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFilter narrows a transaction listing. Nil fields are ignored.
type TransactionFilter struct {
	UserID     *uuid.UUID
	BusinessID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// TransactionRepository defines the operations of the append-mostly
// transaction log. There is no delete path.
type TransactionRepository interface {
	// Create appends a new transaction record.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindByID retrieves a single transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Update modifies an existing transaction record (status correction).
	Update(ctx context.Context, txn *entity.Transaction) error

	// List returns transactions matching the filter, newest first.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
