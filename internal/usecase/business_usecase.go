package usecase

import (
	"context"

	"avo/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateBusinessInput is a partial business update. Nil fields are left untouched.
type UpdateBusinessInput struct {
	Name    *string
	Address *string
	City    *string
	State   *string
	Country *string
	Pincode *string
	Logo    *string
}

// AddEmployeeInput defines the data required to create an employee account
// inside the admin's business.
type AddEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Number   string
	Address  string
}

// UpdateEmployeeInput is a partial employee update, scoped to the admin's business.
type UpdateEmployeeInput struct {
	EmployeeID uuid.UUID
	Name       *string
	Number     *string
	Address    *string
}

// BusinessUsecase defines business-admin operations over the owned business
// and its employee roster. Every operation is scoped to the caller's own
// business; an admin can never reach another business's records.
type BusinessUsecase interface {
	// GetUser returns the caller's own account record.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// GetUserByID returns an employee's record, restricted to the admin's business.
	GetUserByID(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error)

	// GetBusiness returns the business owned by the admin.
	GetBusiness(ctx context.Context, adminID uuid.UUID) (*entity.Business, error)

	// UpdateBusiness partially updates the admin's own business.
	UpdateBusiness(ctx context.Context, adminID uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// ListEmployees returns the admin's roster ordered by creation time.
	ListEmployees(ctx context.Context, adminID uuid.UUID) ([]*entity.User, error)

	// AddEmployee creates a verified employee account linked to the admin's business.
	AddEmployee(ctx context.Context, adminID uuid.UUID, input *AddEmployeeInput) (*entity.User, error)

	// UpdateEmployee partially updates an employee in the admin's business.
	UpdateEmployee(ctx context.Context, adminID uuid.UUID, input *UpdateEmployeeInput) (*entity.User, error)

	// DeleteEmployees removes a batch of employee accounts from the admin's
	// business and returns how many were removed.
	DeleteEmployees(ctx context.Context, adminID uuid.UUID, employeeIDs []uuid.UUID) (int64, error)
}
