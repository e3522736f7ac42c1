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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByNumber retrieves a single user by their phone number.
func (repo *userRepository) FindByNumber(ctx context.Context, number string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by number")
	}

	return toUserDomain(&userM), nil
}

// FindByAuthToken retrieves the user currently holding the given token.
func (repo *userRepository) FindByAuthToken(ctx context.Context, token string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "auth_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by auth token")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesNamed(err, "number") {
				return repository.ErrDuplicateNumber
			}

			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesNamed(err, "number") {
				return repository.ErrDuplicateNumber
			}

			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// ListEmployeesByBusiness returns the employee accounts of a business,
// excluding the owner, ordered by creation time.
func (repo *userRepository) ListEmployeesByBusiness(ctx context.Context, businessID, ownerID uuid.UUID) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ? AND id <> ?", businessID, ownerID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// DeleteEmployees removes the given employee accounts, scoped to the business.
func (repo *userRepository) DeleteEmployees(ctx context.Context, businessID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("business_id = ? AND id IN ? AND role = ?", businessID, ids, entity.RoleUser.String()).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete employees")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		HashedPassword: data.HashedPassword,
		Number:         data.Number,
		Address:        data.Address,
		ProfilePhoto:   data.ProfilePhoto,
		Role:           entity.Role(data.Role),
		IsVerified:     data.IsVerified,
		OTP:            data.OTP,
		AuthToken:      data.AuthToken,
		BusinessID:     data.BusinessID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		HashedPassword: data.HashedPassword,
		Number:         data.Number,
		Address:        data.Address,
		ProfilePhoto:   data.ProfilePhoto,
		Role:           data.Role.String(),
		IsVerified:     data.IsVerified,
		OTP:            data.OTP,
		AuthToken:      data.AuthToken,
		BusinessID:     data.BusinessID,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
