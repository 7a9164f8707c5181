package ports

import (
	"context"
	"io"
	"time"
)

type ObjectStorage interface {
	PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	DeleteObject(ctx context.Context, key string) error
	PresignGetURL(ctx context.Context, key string, expires time.Duration) (string, error)
	GetBucket() string
}
