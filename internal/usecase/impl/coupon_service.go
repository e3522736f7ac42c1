package impl

import (
	"context"
	"log/slog"
	"time"

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

// couponService implements the CouponUsecase interface. Redemption and
// consumption run inside transactions; the concurrency-critical invariants
// (one active coupon per user and offer, uses never past the limit) are
// enforced by the database, not by in-process locking.
type couponService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	businessRepo   repository.BusinessRepository
	offerRepo      repository.OfferRepository
	couponRepo     repository.CouponRepository
	qrService      service.QRCodeService
	eventPublisher service.EventPublisher
	logger         *slog.Logger
	now            func() time.Time
}

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	BusinessRepo   repository.BusinessRepository
	OfferRepo      repository.OfferRepository
	CouponRepo     repository.CouponRepository
	QRService      service.QRCodeService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		businessRepo:   params.BusinessRepo,
		offerRepo:      params.OfferRepo,
		couponRepo:     params.CouponRepo,
		qrService:      params.QRService,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RedeemCoupon claims an active offer for a user. A previous coupon on the
// same offer whose window has passed is lazily marked EXPIRED, freeing the
// redemption slot; any non-expired one conflicts, exhausted included, so the
// per-user usage cap holds for the life of the offer window.
func (srv *couponService) RedeemCoupon(ctx context.Context, userID, offerID uuid.UUID) (*entity.Coupon, error) {
	now := srv.now()

	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "redemption failed")
		}

		return nil, errors.Wrap(err, "failed to find offer for redemption")
	}

	if !offer.Published {
		return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer not published")
	}
	if !offer.IsActive(now) {
		return nil, errors.Wrap(domainerrors.ErrOfferNotFound, "offer outside its validity window")
	}

	var coupon *entity.Coupon
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		existing, findErr := couponRepo.FindActiveByUserAndOffer(ctx, userID, offerID)
		if findErr != nil && !errors.Is(findErr, repository.ErrCouponNotFound) {
			return errors.Wrap(findErr, "failed to check active coupon")
		}

		if existing != nil {
			if !existing.IsExpired(now) {
				return errors.Wrap(domainerrors.ErrCouponAlreadyRedeemed, "active coupon exists")
			}
			// The previous coupon ran out the clock. Retire it so the
			// partial unique index accepts a fresh redemption.
			if expireErr := couponRepo.MarkExpired(ctx, existing.ID); expireErr != nil {
				return errors.Wrap(expireErr, "failed to expire stale coupon")
			}
			srv.publishEvent(ctx, service.EventCouponExpired, existing, offer.BusinessID)
		}

		coupon = &entity.Coupon{
			OfferID:    offerID,
			UserID:     userID,
			Status:     entity.CouponStatusRedeemed,
			UsageLimit: offer.UsageLimit,
			ExpiresAt:  offer.ValidUntil,
			RedeemedAt: now,
		}
		if createErr := couponRepo.Create(ctx, coupon); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateCoupon) {
				return errors.Wrap(domainerrors.ErrCouponAlreadyRedeemed, "concurrent redemption lost")
			}

			return errors.Wrap(createErr, "failed to create coupon")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Redemption failed",
			slog.Any("userID", userID), slog.Any("offerID", offerID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, service.EventCouponRedeemed, coupon, offer.BusinessID)
	srv.log(ctx).Info("Coupon redeemed",
		slog.Any("couponID", coupon.ID), slog.Any("offerID", offerID), slog.Any("userID", userID))

	return coupon, nil
}

// UseCoupon consumes one use of a coupon on behalf of the business that owns
// the offer. Only accounts attached to that business may consume, and the
// increment plus its audit record commit together. Unpublishing or
// soft-deleting the offer does not block consumption of already redeemed
// coupons; only expiry and exhaustion do.
func (srv *couponService) UseCoupon(ctx context.Context, consumerID, couponID uuid.UUID) (*usecase.UseCouponOutput, error) {
	now := srv.now()

	businessID, err := srv.consumerBusinessID(ctx, consumerID)
	if err != nil {
		return nil, err
	}

	var (
		coupon  *entity.Coupon
		offer   *entity.Offer
		newUses int
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		couponRepo := repoFactory.CouponRepo()

		var txErr error
		coupon, txErr = couponRepo.FindByID(ctx, couponID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrCouponNotFound) {
				return errors.Wrap(domainerrors.ErrCouponNotFound, "use failed")
			}

			return errors.Wrap(txErr, "failed to find coupon")
		}

		offer, txErr = repoFactory.OfferRepo().FindByIDIncludingDeleted(ctx, coupon.OfferID)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find offer for coupon")
		}
		if offer.BusinessID != businessID {
			srv.log(ctx).Warn("Cross-business coupon use refused",
				slog.Any("consumerID", consumerID), slog.Any("couponID", couponID))

			return errors.Wrap(domainerrors.ErrForbidden, "coupon belongs to another business")
		}

		switch {
		case coupon.Status == entity.CouponStatusExpired:
			return errors.Wrap(domainerrors.ErrCouponExpired, "use failed")
		case coupon.Status == entity.CouponStatusExhausted:
			return errors.Wrap(domainerrors.ErrCouponExhausted, "use failed")
		case coupon.IsExpired(now):
			if expireErr := couponRepo.MarkExpired(ctx, coupon.ID); expireErr != nil {
				return errors.Wrap(expireErr, "failed to expire coupon")
			}
			srv.publishEvent(ctx, service.EventCouponExpired, coupon, offer.BusinessID)

			return errors.Wrap(domainerrors.ErrCouponExpired, "validity window passed")
		}

		newUses, txErr = couponRepo.ConsumeUse(ctx, coupon.ID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrNoUsesLeft) {
				return errors.Wrap(domainerrors.ErrCouponExhausted, "concurrent use took the last slot")
			}

			return errors.Wrap(txErr, "failed to consume coupon use")
		}

		usage := &entity.CouponUsage{
			CouponID: coupon.ID,
			UsedBy:   consumerID,
			UsedAt:   now,
		}

		return errors.Wrap(couponRepo.CreateUsage(ctx, usage), "failed to record coupon usage")
	})
	if err != nil {
		return nil, err
	}

	coupon.Uses = newUses
	coupon.Status = entity.StatusForUses(newUses, coupon.UsageLimit)

	srv.publishEvent(ctx, service.EventCouponUsed, coupon, offer.BusinessID)
	if coupon.Status == entity.CouponStatusExhausted {
		srv.publishEvent(ctx, service.EventCouponExhausted, coupon, offer.BusinessID)
	}

	srv.log(ctx).Info("Coupon use consumed",
		slog.Any("couponID", coupon.ID), slog.Any("consumerID", consumerID),
		slog.Int("uses", newUses), slog.Int("usageLimit", coupon.UsageLimit))

	return &usecase.UseCouponOutput{
		Coupon:   coupon,
		UsesLeft: coupon.UsageLimit - newUses,
	}, nil
}

// GetRedeemedCoupons returns the user's full coupon history with offer terms.
func (srv *couponService) GetRedeemedCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error) {
	coupons, err := srv.couponRepo.ListWithUsageByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redeemed coupons")
	}

	return coupons, nil
}

// GetValidCoupons returns only the user's currently usable coupons.
func (srv *couponService) GetValidCoupons(ctx context.Context, userID uuid.UUID) ([]*entity.CouponWithUsage, error) {
	coupons, err := srv.couponRepo.ListValidByUser(ctx, userID, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list valid coupons")
	}

	return coupons, nil
}

// GetCouponUsage aggregates the user's consumption per offer.
func (srv *couponService) GetCouponUsage(ctx context.Context, userID uuid.UUID) ([]*entity.OfferUsageSummary, error) {
	summaries, err := srv.couponRepo.SummarizeUsageByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize coupon usage")
	}

	return summaries, nil
}

// GetBusinessCouponUsage aggregates consumption across the admin's offers.
func (srv *couponService) GetBusinessCouponUsage(ctx context.Context, adminID uuid.UUID) ([]*entity.OfferUsageSummary, error) {
	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	summaries, err := srv.couponRepo.SummarizeUsageByBusiness(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize business coupon usage")
	}

	return summaries, nil
}

// GetEmployeeCouponHistory returns the per-employee consumption audit.
func (srv *couponService) GetEmployeeCouponHistory(ctx context.Context, adminID uuid.UUID) ([]*entity.EmployeeCouponAudit, error) {
	business, err := srv.adminBusiness(ctx, adminID)
	if err != nil {
		return nil, err
	}

	audit, err := srv.couponRepo.ListEmployeeAudit(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employee coupon audit")
	}

	return audit, nil
}

// CouponQR renders the PNG QR code for a coupon. Only the owner may request it.
func (srv *couponService) CouponQR(ctx context.Context, userID, couponID uuid.UUID) ([]byte, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCouponNotFound, "QR generation failed")
		}

		return nil, errors.Wrap(err, "failed to find coupon for QR")
	}

	if coupon.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "coupon belongs to another user")
	}

	png, err := srv.qrService.GenerateCouponQR(coupon.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render coupon QR")
	}

	return png, nil
}

// consumerBusinessID resolves which business the consuming account acts
// for: admins through ownership, employees through their roster link.
func (srv *couponService) consumerBusinessID(ctx context.Context, consumerID uuid.UUID) (uuid.UUID, error) {
	consumer, err := srv.userRepo.FindByID(ctx, consumerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrUserNotFound, "consumer lookup failed")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find consumer")
	}

	if consumer.IsBusinessAdmin() {
		business, err := srv.businessRepo.FindByOwnerID(ctx, consumerID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return uuid.Nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "consumer owns no business")
			}

			return uuid.Nil, errors.Wrap(err, "failed to find consumer's business")
		}

		return business.ID, nil
	}

	if consumer.BusinessID == nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrForbidden, "account is not attached to a business")
	}

	return *consumer.BusinessID, nil
}

func (srv *couponService) adminBusiness(ctx context.Context, adminID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByOwnerID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "caller owns no business")
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}

// publishEvent emits a lifecycle event. Delivery is best effort: a broker
// outage must never roll back a committed redemption or use.
func (srv *couponService) publishEvent(ctx context.Context, eventType string, coupon *entity.Coupon, businessID uuid.UUID) {
	event := &service.CouponEvent{
		Type:       eventType,
		CouponID:   coupon.ID.String(),
		OfferID:    coupon.OfferID.String(),
		UserID:     coupon.UserID.String(),
		BusinessID: businessID.String(),
		Uses:       coupon.Uses,
		OccurredAt: srv.now(),
	}

	if err := srv.eventPublisher.PublishCouponEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish coupon event",
			slog.String("eventType", eventType), slog.String("couponID", event.CouponID), slog.Any("error", err))
	}
}
