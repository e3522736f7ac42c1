package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "avo/internal/delivery/context"
	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
	now          func() time.Time
}

// OfferServiceParams holds dependencies for offerService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	BusinessRepo repository.BusinessRepository
	Logger       *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo:    params.OfferRepo,
		businessRepo: params.BusinessRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveOffer creates a new offer or updates an existing one, depending on
// whether the input carries an offer ID. New offers start unpublished.
func (srv *offerService) SaveOffer(ctx context.Context, adminID uuid.UUID, input *usecase.SaveOfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if input.OfferID == nil {
		offer := &entity.Offer{
			BusinessID:      business.ID,
			Title:           input.Title,
			Description:     input.Description,
			DiscountPercent: input.DiscountPercent,
			UsageLimit:      input.UsageLimit,
			ValidFrom:       input.ValidFrom,
			ValidUntil:      input.ValidUntil,
		}
		if err := srv.offerRepo.Create(ctx, offer); err != nil {
			return nil, errors.Wrap(err, "failed to create offer")
		}

		srv.log(ctx).Info("Offer created",
			slog.Any("businessID", business.ID), slog.Any("offerID", offer.ID))

		return offer, nil
	}

	offer, err := srv.ownedOffer(ctx, business.ID, *input.OfferID)
	if err != nil {
		return nil, err
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.DiscountPercent = input.DiscountPercent
	offer.UsageLimit = input.UsageLimit
	offer.ValidFrom = input.ValidFrom
	offer.ValidUntil = input.ValidUntil

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	srv.log(ctx).Debug("Offer updated", slog.Any("offerID", offer.ID))

	return offer, nil
}

// DeleteOffer soft-deletes an offer owned by the admin. Coupons already
// redeemed against it keep working until they expire.
func (srv *offerService) DeleteOffer(ctx context.Context, adminID, offerID uuid.UUID) error {
	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return err
	}

	if _, err := srv.ownedOffer(ctx, business.ID, offerID); err != nil {
		return err
	}

	if err := srv.offerRepo.SoftDelete(ctx, offerID); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return errors.Wrap(domainerrors.ErrOfferNotFound, "offer delete failed")
		}

		return errors.Wrap(err, "failed to delete offer")
	}

	srv.log(ctx).Info("Offer deleted", slog.Any("offerID", offerID))

	return nil
}

// SetOfferPublished toggles the public visibility of an offer. Unpublishing
// hides the offer from listings and blocks new redemptions, but coupons
// already redeemed stay usable.
func (srv *offerService) SetOfferPublished(ctx context.Context, adminID, offerID uuid.UUID, published bool) (*entity.Offer, error) {
	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	offer, err := srv.ownedOffer(ctx, business.ID, offerID)
	if err != nil {
		return nil, err
	}

	if err := srv.offerRepo.SetPublished(ctx, offerID, published); err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "publish toggle failed")
		}

		return nil, errors.Wrap(err, "failed to toggle offer publication")
	}

	offer.Published = published
	srv.log(ctx).Info("Offer publication toggled",
		slog.Any("offerID", offerID), slog.Bool("published", published))

	return offer, nil
}

// ListPublishedOffers returns the public catalogue: published offers whose
// validity window contains the current instant.
func (srv *offerService) ListPublishedOffers(ctx context.Context) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListPublished(ctx, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published offers")
	}

	return offers, nil
}

// ListBusinessOffers returns every non-deleted offer of the admin's
// business, published or not.
func (srv *offerService) ListBusinessOffers(ctx context.Context, adminID uuid.UUID) ([]*entity.Offer, error) {
	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	offers, err := srv.offerRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business offers")
	}

	return offers, nil
}

func (srv *offerService) adminBusiness(ctx context.Context, adminID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "caller owns no business")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// ownedOffer loads an offer and refuses it when it belongs to another business.
func (srv *offerService) ownedOffer(ctx context.Context, businessID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	if offer.BusinessID != businessID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "offer belongs to another business")
	}

	return offer, nil
}

func validateOfferInput(input *usecase.SaveOfferInput) error {
	if input.Title == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "offer title is required")
	}
	if input.DiscountPercent < 1 || input.DiscountPercent > 100 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "discount percent must be between 1 and 100")
	}
	if input.UsageLimit < 1 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "usage limit must be at least 1")
	}
	if !input.ValidUntil.After(input.ValidFrom) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "validity window is empty")
	}

	return nil
}
