package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "avo/internal/delivery/context"
	domainerrors "avo/internal/domain/errors"
	"avo/internal/domain/service"
	"avo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store  service.MediaStore
	logger *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store  service.MediaStore
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores an uploaded image and returns its public URL.
func (srv *mediaService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if input.Content == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no file content")
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "only image uploads are accepted")
	}

	url, err := srv.store.Upload(ctx, input.Filename, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Image upload failed",
			slog.String("filename", input.Filename), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed, "failed to store image")
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("filename", input.Filename), slog.String("url", url))

	return &usecase.UploadImageOutput{URL: url}, nil
}
