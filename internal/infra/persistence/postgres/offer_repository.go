package postgres

import (
	"context"
	"time"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// FindByID retrieves a single non-deleted offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).First(&offerM, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// FindByIDIncludingDeleted retrieves an offer regardless of its deleted flag.
func (repo *offerRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).First(&offerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// Create persists a new offer entity.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// Update modifies an existing offer entity.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Save(offerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// SetPublished toggles the published flag of an offer.
func (repo *offerRepository) SetPublished(ctx context.Context, id uuid.UUID, published bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("published", published)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set offer published flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// SoftDelete flags an offer as deleted, keeping the row for coupon audit history.
func (repo *offerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// ListPublished returns published offers across all businesses whose
// validity window contains the given instant.
func (repo *offerRepository) ListPublished(ctx context.Context, now time.Time) ([]*entity.Offer, error) {
	var models []*model.OfferModel
	err := repo.db.WithContext(ctx).
		Where("published = TRUE AND deleted_at IS NULL AND valid_from <= ? AND valid_until > ?", now, now).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published offers")
	}

	return toOfferDomainSlice(models), nil
}

// ListByBusiness returns all non-deleted offers of a business, any state.
func (repo *offerRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Offer, error) {
	var models []*model.OfferModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ? AND deleted_at IS NULL", businessID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers by business")
	}

	return toOfferDomainSlice(models), nil
}

func toOfferDomainSlice(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, m := range models {
		offers = append(offers, toOfferDomain(m))
	}

	return offers
}

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Title:           data.Title,
		Description:     data.Description,
		DiscountPercent: data.DiscountPercent,
		UsageLimit:      data.UsageLimit,
		ValidFrom:       data.ValidFrom,
		ValidUntil:      data.ValidUntil,
		Published:       data.Published,
		DeletedAt:       data.DeletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:              data.ID,
		BusinessID:      data.BusinessID,
		Title:           data.Title,
		Description:     data.Description,
		DiscountPercent: data.DiscountPercent,
		UsageLimit:      data.UsageLimit,
		ValidFrom:       data.ValidFrom,
		ValidUntil:      data.ValidUntil,
		Published:       data.Published,
		DeletedAt:       data.DeletedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
