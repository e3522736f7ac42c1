package service

import (
	"context"
	"io"
)

// MediaStore persists uploaded binary assets and returns a public URL for each.
type MediaStore interface {
	// Upload stores the content under a generated key derived from filename
	// and returns the URL where it can be fetched.
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}
