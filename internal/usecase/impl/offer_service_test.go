package impl

import (
	"context"
	"testing"
	"time"

	"avo/internal/domain/entity"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/repository"
	mockRepo "avo/internal/mocks/repository"
	"avo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixtures struct {
	service      usecase.OfferUsecase
	offerRepo    *mockRepo.MockOfferRepository
	businessRepo *mockRepo.MockBusinessRepository
	now          time.Time
}

func createTestOfferService(t *testing.T) offerServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)

	svc := NewOfferService(OfferServiceParams{
		OfferRepo:    offerRepo,
		BusinessRepo: businessRepo,
		Logger:       newDiscardLogger(),
	})

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.(*offerService).now = func() time.Time { return now }

	return offerServiceFixtures{
		service:      svc,
		offerRepo:    offerRepo,
		businessRepo: businessRepo,
		now:          now,
	}
}

func validSaveOfferInput(now time.Time) *usecase.SaveOfferInput {
	return &usecase.SaveOfferInput{
		Title:           "Flat 20% Off",
		Description:     "Weekday lunch deal",
		DiscountPercent: 20,
		UsageLimit:      3,
		ValidFrom:       now,
		ValidUntil:      now.Add(7 * 24 * time.Hour),
	}
}

func TestOfferService_SaveOffer_Create_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	input := validSaveOfferInput(fx.now)

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.offerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Run(func(ctx context.Context, offer *entity.Offer) {
			offer.ID = uuid.New()
		}).
		Return(nil)

	offer, err := fx.service.SaveOffer(ctx, adminID, input)

	require.NoError(t, err)
	assert.Equal(t, business.ID, offer.BusinessID)
	assert.Equal(t, input.Title, offer.Title)
	// New offers stay hidden until the admin publishes them.
	assert.False(t, offer.Published)
}

func TestOfferService_SaveOffer_Update_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	existing := &entity.Offer{ID: uuid.New(), BusinessID: business.ID, Title: "Old Title", Published: true}
	input := validSaveOfferInput(fx.now)
	input.OfferID = &existing.ID

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.offerRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	fx.offerRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	offer, err := fx.service.SaveOffer(ctx, adminID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Title, offer.Title)
	// An update never flips publication state.
	assert.True(t, offer.Published)
}

func TestOfferService_SaveOffer_Validation(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()

	tests := []struct {
		name   string
		mutate func(input *usecase.SaveOfferInput)
	}{
		{"empty title", func(input *usecase.SaveOfferInput) { input.Title = "" }},
		{"discount too low", func(input *usecase.SaveOfferInput) { input.DiscountPercent = 0 }},
		{"discount too high", func(input *usecase.SaveOfferInput) { input.DiscountPercent = 101 }},
		{"zero usage limit", func(input *usecase.SaveOfferInput) { input.UsageLimit = 0 }},
		{"empty window", func(input *usecase.SaveOfferInput) { input.ValidUntil = input.ValidFrom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSaveOfferInput(fx.now)
			tt.mutate(input)

			offer, err := fx.service.SaveOffer(ctx, adminID, input)

			assert.Error(t, err)
			assert.Nil(t, offer)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestOfferService_SaveOffer_ForeignOffer(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	foreign := &entity.Offer{ID: uuid.New(), BusinessID: uuid.New()}
	input := validSaveOfferInput(fx.now)
	input.OfferID = &foreign.ID

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.offerRepo.EXPECT().FindByID(ctx, foreign.ID).Return(foreign, nil)

	offer, err := fx.service.SaveOffer(ctx, adminID, input)

	assert.Error(t, err)
	assert.Nil(t, offer)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestOfferService_DeleteOffer_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: business.ID}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	fx.offerRepo.EXPECT().SoftDelete(ctx, offer.ID).Return(nil)

	err := fx.service.DeleteOffer(ctx, adminID, offer.ID)

	require.NoError(t, err)
}

func TestOfferService_SetOfferPublished_Success(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()
	business := &entity.Business{ID: uuid.New(), OwnerID: adminID}
	offer := &entity.Offer{ID: uuid.New(), BusinessID: business.ID, Published: false}

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(business, nil)
	fx.offerRepo.EXPECT().FindByID(ctx, offer.ID).Return(offer, nil)
	fx.offerRepo.EXPECT().SetPublished(ctx, offer.ID, true).Return(nil)

	updated, err := fx.service.SetOfferPublished(ctx, adminID, offer.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.Published)
}

func TestOfferService_ListPublishedOffers_UsesPinnedClock(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	offers := []*entity.Offer{{ID: uuid.New(), Title: "Flat 20% Off", Published: true}}

	fx.offerRepo.EXPECT().ListPublished(ctx, fx.now).Return(offers, nil)

	result, err := fx.service.ListPublishedOffers(ctx)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestOfferService_ListBusinessOffers_NoBusiness(t *testing.T) {
	fx := createTestOfferService(t)

	ctx := context.Background()
	adminID := uuid.New()

	fx.businessRepo.EXPECT().FindByOwnerID(ctx, adminID).Return(nil, repository.ErrBusinessNotFound)

	result, err := fx.service.ListBusinessOffers(ctx, adminID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}
