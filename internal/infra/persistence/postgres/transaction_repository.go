package postgres

import (
	"context"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transactionRepository implements the repository.TransactionRepository interface using GORM.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a new transaction record.
func (repo *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Create(txnM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user, business or coupon reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	txn.ID = txnM.ID
	txn.CreatedAt = txnM.CreatedAt
	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// FindByID retrieves a single transaction by its unique ID.
func (repo *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnM model.TransactionModel
	if err := repo.db.WithContext(ctx).First(&txnM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(&txnM), nil
}

// Update modifies an existing transaction record (status correction).
func (repo *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	txnM := fromTransactionDomain(txn)

	if err := repo.db.WithContext(ctx).Save(txnM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update transaction")
	}

	txn.UpdatedAt = txnM.UpdatedAt

	return nil
}

// List returns transactions matching the filter, newest first.
func (repo *transactionRepository) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	query := repo.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.BusinessID != nil {
		query = query.Where("business_id = ?", *filter.BusinessID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var models []*model.TransactionModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	txns := make([]*entity.Transaction, 0, len(models))
	for _, m := range models {
		txns = append(txns, toTransactionDomain(m))
	}

	return txns, nil
}

// toTransactionDomain converts a GORM TransactionModel to a domain Transaction entity.
func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		CouponID:   data.CouponID,
		Amount:     data.Amount,
		Status:     entity.TransactionStatus(data.Status),
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromTransactionDomain converts a domain Transaction entity to a GORM TransactionModel.
func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		CouponID:   data.CouponID,
		Amount:     data.Amount,
		Status:     string(data.Status),
		Note:       data.Note,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
