package impl

import (
	"context"
	"testing"
	"time"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	mockRepo "avo/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCouponService_RedeemCoupon_AlreadyRedeemed(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)
	active := &entity.Coupon{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		UserID:    userID,
		Status:    entity.CouponStatusRedeemed,
		ExpiresAt: fx.now.Add(time.Hour),
	}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponAlreadyRedeemed, "active coupon exists"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(active, nil)
	})

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponAlreadyRedeemed))
}

func TestCouponService_RedeemCoupon_ConcurrentDuplicate(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	// Two requests race; the unique index lets only one insert through.
	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponAlreadyRedeemed, "concurrent redemption lost"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(nil, repository.ErrCouponNotFound)
		mockCouponRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Coupon")).
			Return(repository.ErrDuplicateCoupon)
	})

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponAlreadyRedeemed))
}

func TestCouponService_RedeemCoupon_UnpublishedOffer(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)
	offer.Published = false

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}

func TestCouponService_RedeemCoupon_OfferOutsideWindow(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)
	offer.ValidUntil = fx.now.Add(-time.Minute)

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrOfferNotFound))
}

func TestCouponService_RedeemCoupon_ExhaustedCouponStillBlocks(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)
	exhausted := &entity.Coupon{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		UserID:     userID,
		Status:     entity.CouponStatusExhausted,
		Uses:       3,
		UsageLimit: 3,
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	// Using up every slot does not open the door to another redemption of
	// the same offer while the window is still running.
	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponAlreadyRedeemed, "active coupon exists"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(exhausted, nil)
	})

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	assert.Error(t, err)
	assert.Nil(t, coupon)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponAlreadyRedeemed))
}

func TestCouponService_UseCoupon_CrossBusiness(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	consumerBusinessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &consumerBusinessID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: uuid.New()}
	coupon := &entity.Coupon{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		UserID:    uuid.New(),
		Status:    entity.CouponStatusRedeemed,
		ExpiresAt: fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrForbidden, "coupon belongs to another business"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
	})

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCouponService_UseCoupon_LazyExpiry(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &businessID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: businessID}
	coupon := &entity.Coupon{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		UserID:    uuid.New(),
		Status:    entity.CouponStatusRedeemed,
		ExpiresAt: fx.now.Add(-time.Minute),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponExpired, "validity window passed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
		mockCouponRepo.EXPECT().MarkExpired(ctx, coupon.ID).Return(nil)
	})

	var published *service.CouponEvent
	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Run(func(ctx context.Context, event *service.CouponEvent) {
			published = event
		}).
		Return(nil)

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExpired))
	assert.NotNil(t, published)
	assert.Equal(t, service.EventCouponExpired, published.Type)
}

func TestCouponService_UseCoupon_AlreadyExhausted(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &businessID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: businessID}
	coupon := &entity.Coupon{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		UserID:    uuid.New(),
		Status:    entity.CouponStatusExhausted,
		ExpiresAt: fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponExhausted, "use failed"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
	})

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestCouponService_UseCoupon_ConcurrentLastSlot(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &businessID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: businessID}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		UserID:     uuid.New(),
		Status:     entity.CouponStatusPartiallyUsed,
		Uses:       2,
		UsageLimit: 3,
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	// The status read raced another consumer; the conditional increment
	// found no remaining slot.
	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCouponExhausted, "concurrent use took the last slot"), func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
		mockCouponRepo.EXPECT().ConsumeUse(ctx, coupon.ID).Return(0, repository.ErrNoUsesLeft)
	})

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCouponExhausted))
}

func TestCouponService_UseCoupon_ConsumerNotAttached(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	output, err := fx.service.UseCoupon(ctx, consumer.ID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCouponService_CouponQR_NotOwner(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	coupon := &entity.Coupon{ID: uuid.New(), UserID: uuid.New()}

	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)

	png, err := fx.service.CouponQR(ctx, uuid.New(), coupon.ID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
