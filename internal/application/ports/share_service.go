package ports

import (
	"context"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/share"
	"homedrive-api/internal/domain/user"
)

type ShareService interface {
	Create(ctx context.Context, authID string, fileUUID uuid.UUID, recipientEmail string) (*share.Share, error)
	Delete(ctx context.Context, authID string, fileUUID uuid.UUID, recipientEmail string) (*share.Share, error)
	SharedWithUser(ctx context.Context, authID string, userUUID user.UUID) (file.Files, error)
}
