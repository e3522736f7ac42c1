package impl

import (
	"context"
	"log/slog"

	deliverycontext "avo/internal/delivery/context"
	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUser returns the caller's own account record.
func (srv *businessService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// GetUserByID returns an employee record, refusing lookups outside the
// admin's own business.
func (srv *businessService) GetUserByID(ctx context.Context, adminID, userID uuid.UUID) (*entity.User, error) {
	business, err := srv.ownedBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "employee lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find employee")
	}

	if user.BusinessID == nil || *user.BusinessID != business.ID {
		srv.log(ctx).Warn("Cross-business employee lookup refused",
			slog.Any("adminID", adminID), slog.Any("userID", userID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "employee belongs to another business")
	}

	return user, nil
}

// GetBusiness returns the business owned by the admin.
func (srv *businessService) GetBusiness(ctx context.Context, adminID uuid.UUID) (*entity.Business, error) {
	return srv.ownedBusiness(ctx, adminID)
}

// UpdateBusiness partially updates the admin's own business.
func (srv *businessService) UpdateBusiness(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.ownedBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.City != nil {
		business.City = *input.City
	}
	if input.State != nil {
		business.State = *input.State
	}
	if input.Country != nil {
		business.Country = *input.Country
	}
	if input.Pincode != nil {
		business.Pincode = *input.Pincode
	}
	if input.Logo != nil {
		business.Logo = *input.Logo
	}

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	srv.log(ctx).Debug("Business updated", slog.Any("businessID", business.ID))

	return business, nil
}

// ListEmployees returns the admin's roster, excluding the admin's own account.
func (srv *businessService) ListEmployees(ctx context.Context, adminID uuid.UUID) ([]*entity.User, error) {
	business, err := srv.ownedBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	employees, err := srv.userRepo.ListEmployeesByBusiness(ctx, business.ID, adminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}

// AddEmployee creates an employee account linked to the admin's business.
// Employee accounts are created verified; there is no OTP round trip.
func (srv *businessService) AddEmployee(ctx context.Context, adminID uuid.UUID, input *usecase.AddEmployeeInput) (*entity.User, error) {
	business, err := srv.ownedBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash employee password")
	}

	employee := &entity.User{
		Name:           input.Name,
		Email:          input.Email,
		HashedPassword: hashedPassword,
		Address:        input.Address,
		Role:           entity.RoleUser,
		IsVerified:     true,
		BusinessID:     &business.ID,
	}
	if input.Number != "" {
		number := input.Number
		employee.Number = &number
	}

	if err := srv.userRepo.Create(ctx, employee); err != nil {
		return nil, translateUserPersistenceError(err)
	}

	srv.log(ctx).Info("Employee added",
		slog.Any("businessID", business.ID), slog.Any("employeeID", employee.ID))

	return employee, nil
}

// UpdateEmployee partially updates an employee inside the admin's business.
func (srv *businessService) UpdateEmployee(ctx context.Context, adminID uuid.UUID, input *usecase.UpdateEmployeeInput) (*entity.User, error) {
	employee, err := srv.GetUserByID(ctx, adminID, input.EmployeeID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Number != nil {
		employee.Number = input.Number
	}
	if input.Address != nil {
		employee.Address = *input.Address
	}

	if err := srv.userRepo.Update(ctx, employee); err != nil {
		return nil, translateUserPersistenceError(err)
	}

	return employee, nil
}

// DeleteEmployees removes a batch of employee accounts. Admin accounts in
// the batch are skipped by the role filter in the repository.
func (srv *businessService) DeleteEmployees(ctx context.Context, adminID uuid.UUID, employeeIDs []uuid.UUID) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "no employee IDs given")
	}

	business, err := srv.ownedBusiness(ctx, adminID)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var execErr error
		deleted, execErr = repoFactory.UserRepo().DeleteEmployees(ctx, business.ID, employeeIDs)

		return errors.Wrap(execErr, "failed to delete employees")
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Employees deleted",
		slog.Any("businessID", business.ID), slog.Int64("count", deleted))

	return deleted, nil
}

// ownedBusiness resolves the business owned by the calling admin.
func (srv *businessService) ownedBusiness(ctx context.Context, adminID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "caller owns no business")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
