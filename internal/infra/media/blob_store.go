// Package media stores uploaded assets in a blob bucket.
package media

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"avo/config"
	"avo/internal/domain/lifecycle"
	"avo/internal/domain/service"
)

// blobStore implements MediaStore on top of a gocloud.dev blob bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StoreParams holds dependencies for the media store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns it as a MediaStore.
func NewBlobStore(params StoreParams) (service.MediaStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Media.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Media.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores the content under a random key derived from filename and
// returns the public URL where it can be fetched.
func (s *blobStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := uuid.New().String() + path.Ext(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "write upload content")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close bucket writer")
	}

	s.logger.Info("media uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}
