package impl

import (
	"context"
	"testing"
	"time"

	"avo/internal/domain/entity"
	"avo/internal/domain/repository"
	"avo/internal/domain/service"
	mockRepo "avo/internal/mocks/repository"
	mockSvc "avo/internal/mocks/service"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// couponServiceFixtures holds all test dependencies for coupon service tests.
// The clock is pinned so window checks are deterministic.
type couponServiceFixtures struct {
	t              *testing.T
	service        usecase.CouponUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	businessRepo   *mockRepo.MockBusinessRepository
	offerRepo      *mockRepo.MockOfferRepository
	couponRepo     *mockRepo.MockCouponRepository
	qrService      *mockSvc.MockQRCodeService
	eventPublisher *mockSvc.MockEventPublisher
	now            time.Time
}

func createTestCouponService(t *testing.T) couponServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)

	svc := NewCouponService(CouponServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		BusinessRepo:   businessRepo,
		OfferRepo:      offerRepo,
		CouponRepo:     couponRepo,
		QRService:      qrService,
		EventPublisher: eventPublisher,
		Logger:         newDiscardLogger(),
	})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.(*couponService).now = func() time.Time { return now }

	return couponServiceFixtures{
		t:              t,
		service:        svc,
		txManager:      txManager,
		userRepo:       userRepo,
		businessRepo:   businessRepo,
		offerRepo:      offerRepo,
		couponRepo:     couponRepo,
		qrService:      qrService,
		eventPublisher: eventPublisher,
		now:            now,
	}
}

func (f couponServiceFixtures) onExecute(ctx context.Context, result error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)
			_ = fn(factory)
		}).
		Return(result)
}

// activeOffer builds a published offer whose window contains the pinned clock.
func (f couponServiceFixtures) activeOffer(usageLimit int) *entity.Offer {
	return &entity.Offer{
		ID:         uuid.New(),
		BusinessID: uuid.New(),
		Title:      "Flat 20% Off",
		UsageLimit: usageLimit,
		ValidFrom:  f.now.Add(-time.Hour),
		ValidUntil: f.now.Add(24 * time.Hour),
		Published:  true,
	}
}

func TestCouponService_RedeemCoupon_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(3)

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(nil, repository.ErrCouponNotFound)
		mockCouponRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Coupon")).
			Run(func(ctx context.Context, coupon *entity.Coupon) {
				coupon.ID = uuid.New()
			}).
			Return(nil)
	})

	var published *service.CouponEvent
	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Run(func(ctx context.Context, event *service.CouponEvent) {
			published = event
		}).
		Return(nil)

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CouponStatusRedeemed, coupon.Status)
	assert.Equal(t, 3, coupon.UsageLimit)
	assert.Equal(t, offer.ValidUntil, coupon.ExpiresAt)
	assert.Equal(t, fx.now, coupon.RedeemedAt)
	require.NotNil(t, published)
	assert.Equal(t, service.EventCouponRedeemed, published.Type)
	assert.Equal(t, coupon.ID.String(), published.CouponID)
}

func TestCouponService_RedeemCoupon_ExpiredPredecessorFreesSlot(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(2)
	stale := &entity.Coupon{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		UserID:    userID,
		Status:    entity.CouponStatusPartiallyUsed,
		ExpiresAt: fx.now.Add(-time.Minute),
	}

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(stale, nil)
		mockCouponRepo.EXPECT().MarkExpired(ctx, stale.ID).Return(nil)
		mockCouponRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Coupon")).
			Run(func(ctx context.Context, coupon *entity.Coupon) {
				coupon.ID = uuid.New()
			}).
			Return(nil)
	})

	var eventTypes []string
	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Run(func(ctx context.Context, event *service.CouponEvent) {
			eventTypes = append(eventTypes, event.Type)
		}).
		Return(nil)

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.CouponStatusRedeemed, coupon.Status)
	assert.Equal(t, []string{service.EventCouponExpired, service.EventCouponRedeemed}, eventTypes)
}

func TestCouponService_RedeemCoupon_EventFailureDoesNotFail(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	offer := fx.activeOffer(1)

	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		factory.EXPECT().CouponRepo().Return(mockCouponRepo)

		mockCouponRepo.EXPECT().
			FindActiveByUserAndOffer(ctx, userID, offer.ID).
			Return(nil, repository.ErrCouponNotFound)
		mockCouponRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Coupon")).
			Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Return(assert.AnError)

	coupon, err := fx.service.RedeemCoupon(ctx, userID, offer.ID)

	require.NoError(t, err)
	assert.NotNil(t, coupon)
}

func TestCouponService_UseCoupon_EmployeeSuccess(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &businessID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: businessID, UsageLimit: 3}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		UserID:     uuid.New(),
		Status:     entity.CouponStatusRedeemed,
		UsageLimit: 3,
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
		mockCouponRepo.EXPECT().ConsumeUse(ctx, coupon.ID).Return(1, nil)
		mockCouponRepo.EXPECT().
			CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
			Run(func(ctx context.Context, usage *entity.CouponUsage) {
				assert.Equal(t, coupon.ID, usage.CouponID)
				assert.Equal(t, consumer.ID, usage.UsedBy)
				assert.Equal(t, fx.now, usage.UsedAt)
			}).
			Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Return(nil)

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, output.UsesLeft)
	assert.Equal(t, entity.CouponStatusPartiallyUsed, output.Coupon.Status)
	assert.Equal(t, 1, output.Coupon.Uses)
}

func TestCouponService_UseCoupon_LastUseExhausts(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleBusinessAdmin}
	business := &entity.Business{ID: uuid.New(), OwnerID: admin.ID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: business.ID}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		UserID:     uuid.New(),
		Status:     entity.CouponStatusPartiallyUsed,
		Uses:       2,
		UsageLimit: 3,
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, admin.ID).Return(admin, nil)
	fx.businessRepo.EXPECT().FindByOwnerID(ctx, admin.ID).Return(business, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
		mockCouponRepo.EXPECT().ConsumeUse(ctx, coupon.ID).Return(3, nil)
		mockCouponRepo.EXPECT().CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).Return(nil)
	})

	var eventTypes []string
	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Run(func(ctx context.Context, event *service.CouponEvent) {
			eventTypes = append(eventTypes, event.Type)
		}).
		Return(nil)

	output, err := fx.service.UseCoupon(ctx, admin.ID, coupon.ID)

	require.NoError(t, err)
	assert.Equal(t, 0, output.UsesLeft)
	assert.Equal(t, entity.CouponStatusExhausted, output.Coupon.Status)
	assert.Equal(t, []string{service.EventCouponUsed, service.EventCouponExhausted}, eventTypes)
}

func TestCouponService_UseCoupon_UnpublishedOfferStillWorks(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	businessID := uuid.New()
	consumer := &entity.User{ID: uuid.New(), Role: entity.RoleUser, BusinessID: &businessID}
	deletedAt := fx.now.Add(-time.Hour)
	offer := &entity.Offer{ID: uuid.New(), BusinessID: businessID, Published: false, DeletedAt: &deletedAt}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		OfferID:    offer.ID,
		UserID:     uuid.New(),
		Status:     entity.CouponStatusRedeemed,
		UsageLimit: 2,
		ExpiresAt:  fx.now.Add(time.Hour),
	}

	fx.userRepo.EXPECT().FindByID(ctx, consumer.ID).Return(consumer, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockCouponRepo := mockRepo.NewMockCouponRepository(t)
		mockOfferRepo := mockRepo.NewMockOfferRepository(t)

		factory.EXPECT().CouponRepo().Return(mockCouponRepo)
		factory.EXPECT().OfferRepo().Return(mockOfferRepo)

		mockCouponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
		mockOfferRepo.EXPECT().FindByIDIncludingDeleted(ctx, offer.ID).Return(offer, nil)
		mockCouponRepo.EXPECT().ConsumeUse(ctx, coupon.ID).Return(1, nil)
		mockCouponRepo.EXPECT().CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).Return(nil)
	})

	fx.eventPublisher.EXPECT().
		PublishCouponEvent(ctx, mock.AnythingOfType("*service.CouponEvent")).
		Return(nil)

	output, err := fx.service.UseCoupon(ctx, consumer.ID, coupon.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, output.UsesLeft)
}

func TestCouponService_GetValidCoupons_UsesPinnedClock(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupons := []*entity.CouponWithUsage{
		{Coupon: entity.Coupon{ID: uuid.New(), UserID: userID}, OfferTitle: "Flat 20% Off", UsesLeft: 2},
	}

	fx.couponRepo.EXPECT().ListValidByUser(ctx, userID, fx.now).Return(coupons, nil)

	result, err := fx.service.GetValidCoupons(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Flat 20% Off", result[0].OfferTitle)
}

func TestCouponService_GetBusinessCouponUsage_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	summaries := []*entity.OfferUsageSummary{
		{OfferID: uuid.New(), OfferTitle: "Flat 20% Off", CouponsIssued: 5, TotalUses: 9},
	}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.couponRepo.EXPECT().SummarizeUsageByBusiness(ctx, business.ID).Return(summaries, nil)

	result, err := fx.service.GetBusinessCouponUsage(ctx, adminID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, 9, result[0].TotalUses)
}

func TestCouponService_GetEmployeeCouponHistory_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	audit := []*entity.EmployeeCouponAudit{
		{EmployeeID: uuid.New(), EmployeeName: "Clerk", OfferTitle: "Flat 20% Off", UsedAt: fx.now},
	}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.couponRepo.EXPECT().ListEmployeeAudit(ctx, business.ID).Return(audit, nil)

	result, err := fx.service.GetEmployeeCouponHistory(ctx, adminID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "Clerk", result[0].EmployeeName)
}

func TestCouponService_CouponQR_Success(t *testing.T) {
	fx := createTestCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := &entity.Coupon{ID: uuid.New(), UserID: userID}
	pngBytes := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.couponRepo.EXPECT().FindByID(ctx, coupon.ID).Return(coupon, nil)
	fx.qrService.EXPECT().GenerateCouponQR(coupon.ID).Return(pngBytes, nil)

	png, err := fx.service.CouponQR(ctx, userID, coupon.ID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}
