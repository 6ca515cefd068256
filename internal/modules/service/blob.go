package service

import (
	"context"
	"mime/multipart"
	"time"
)

// BlobStore is the slice of blob.S3Deps the services use.
type BlobStore interface {
	UploadFormFile(ctx context.Context, key string, fh *multipart.FileHeader) error
	DeleteObject(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}
