package impl

import (
	"context"
	"log/slog"

	deliverycontext "avo/internal/delivery/context"
	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// TransactionServiceParams holds dependencies for transactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In

	TransactionRepo repository.TransactionRepository
	Logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return &transactionService{
		transactionRepo: params.TransactionRepo,
		logger:          params.Logger,
	}
}

func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTransaction appends a new record to the transaction log.
func (srv *transactionService) CreateTransaction(ctx context.Context, input *usecase.CreateTransactionInput) (*entity.Transaction, error) {
	status := input.Status
	if status == "" {
		status = entity.TransactionStatusPending
	}
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown transaction status")
	}
	if input.Amount < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must not be negative")
	}

	txn := &entity.Transaction{
		UserID:     input.UserID,
		BusinessID: input.BusinessID,
		CouponID:   input.CouponID,
		Amount:     input.Amount,
		Status:     status,
		Note:       input.Note,
	}

	if err := srv.transactionRepo.Create(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	srv.log(ctx).Info("Transaction recorded",
		slog.Any("transactionID", txn.ID), slog.Any("userID", txn.UserID),
		slog.Float64("amount", txn.Amount), slog.Any("status", txn.Status))

	return txn, nil
}

// GetTransaction retrieves a single transaction record.
func (srv *transactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txn, err := srv.transactionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTransactionNotFound, "transaction lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return txn, nil
}

// ListTransactions returns records matching the filter, newest first.
func (srv *transactionService) ListTransactions(ctx context.Context, input *usecase.ListTransactionsInput) ([]*entity.Transaction, error) {
	filter := repository.TransactionFilter{
		UserID:     input.UserID,
		BusinessID: input.BusinessID,
		From:       input.From,
		To:         input.To,
	}

	txns, err := srv.transactionRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txns, nil
}

// UpdateTransaction applies a partial correction to an existing record.
func (srv *transactionService) UpdateTransaction(ctx context.Context, input *usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	txn, err := srv.GetTransaction(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must not be negative")
		}
		txn.Amount = *input.Amount
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown transaction status")
		}
		txn.Status = *input.Status
	}
	if input.Note != nil {
		txn.Note = *input.Note
	}

	if err := srv.transactionRepo.Update(ctx, txn); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	srv.log(ctx).Debug("Transaction corrected", slog.Any("transactionID", txn.ID))

	return txn, nil
}
