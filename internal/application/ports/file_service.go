package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, authID string, in *multipart.FileHeader) (*file.File, error)
	DownloadURL(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error)
	Delete(ctx context.Context, authID string, fileUUID uuid.UUID) error
	OwnFiles(ctx context.Context, authID string, userUUID user.UUID) (file.Files, error)
}
