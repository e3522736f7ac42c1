package usecase

import (
	"context"
	"io"
)

// UploadImageInput carries an uploaded file and its metadata.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadImageOutput returns the public URL of the stored asset.
type UploadImageOutput struct {
	URL string
}

// MediaUsecase stores uploaded images (profile photos, business logos)
// and hands back their public URLs.
type MediaUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
}
