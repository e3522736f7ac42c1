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

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByOwnerID retrieves the business owned by the given user.
func (repo *businessRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	if err := repo.db.WithContext(ctx).First(&businessM, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner id")
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business entity.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("owner already has a business")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update modifies an existing business entity.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Save(businessM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// DeleteByOwnerID removes the business owned by the given user.
func (repo *businessRepository) DeleteByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&model.BusinessModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business by owner id")
	}

	return nil
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Pincode:   data.Pincode,
		Logo:      data.Logo,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Address:   data.Address,
		City:      data.City,
		State:     data.State,
		Country:   data.Country,
		Pincode:   data.Pincode,
		Logo:      data.Logo,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
