package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "avo/internal/domain/errors"
	mockSvc "avo/internal/mocks/service"
	"avo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	store   *mockSvc.MockMediaStore
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	store := mockSvc.NewMockMediaStore(t)

	svc := NewMediaService(MediaServiceParams{
		Store:  store,
		Logger: newDiscardLogger(),
	})

	return mediaServiceFixtures{
		service: svc,
		store:   store,
	}
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	content := strings.NewReader("fake png bytes")

	fx.store.EXPECT().
		Upload(ctx, "logo.png", "image/png", content).
		Return("https://cdn.example.com/uploads/logo.png", nil)

	out, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{
		Filename:    "logo.png",
		ContentType: "image/png",
		Content:     content,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/logo.png", out.URL)
}

func TestMediaService_UploadImage_MissingContent(t *testing.T) {
	fx := createTestMediaService(t)

	out, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
		Filename:    "logo.png",
		ContentType: "image/png",
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_UploadImage_RejectsNonImage(t *testing.T) {
	fx := createTestMediaService(t)

	out, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
		Filename:    "report.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.7"),
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_UploadImage_StoreFailure(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()

	fx.store.EXPECT().
		Upload(ctx, "logo.png", "image/jpeg", mock.Anything).
		Return("", assert.AnError)

	out, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{
		Filename:    "logo.png",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("fake jpeg bytes"),
	})

	assert.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUpstreamFailed))
}
