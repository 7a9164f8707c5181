package file

import (
	"context"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/user"
)

type Repository interface {
	FetchFileByID(ctx context.Context, fileUUID uuid.UUID) (*File, error)
	FetchOwnerFiles(ctx context.Context, ownerUUID user.UUID) (Files, error)
	CreateFile(ctx context.Context, ownerUUID user.UUID, req *File) (*File, error)
	DeleteFile(ctx context.Context, fileUUID uuid.UUID) (*File, error)
}
