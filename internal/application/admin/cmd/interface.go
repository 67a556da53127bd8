package cmd

import (
	"context"
	"io"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
)

type AdminRepo interface {
	SaveAdmin(ctx context.Context, a *admin.Admin) error
}

// ImageStorage is the object store the uploaded profile image goes to.
type ImageStorage interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) error
	DeleteFile(ctx context.Context, key string) error
}

// ImageNamer derives object keys and public URLs for uploaded images.
type ImageNamer interface {
	Key(originalFilename string) string
	URL(key string) string
}
