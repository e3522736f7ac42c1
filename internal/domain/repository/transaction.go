package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the usecase layer to scope multi-statement mutations without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// BusinessRepo returns a BusinessRepository bound to the current transaction.
	BusinessRepo() BusinessRepository

	// OfferRepo returns an OfferRepository bound to the current transaction.
	OfferRepo() OfferRepository

	// CouponRepo returns a CouponRepository bound to the current transaction.
	CouponRepo() CouponRepository

	// TransactionRepo returns a TransactionRepository bound to the current transaction.
	TransactionRepo() TransactionRepository
}
