package share

import (
	"context"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/user"
)

type Repository interface {
	FetchShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*Share, error)
	CreateShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*Share, error)
	DeleteShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*Share, error)
	DeleteFileShares(ctx context.Context, fileUUID uuid.UUID) error
	FetchSharedFiles(ctx context.Context, recipientUUID user.UUID) (file.Files, error)
}
