package ports

import (
	"context"

	"homedrive-api/internal/domain/user"
)

type UserService interface {
	ResolveUser(ctx context.Context, authID, email string) (*user.User, error)
	RenameUser(ctx context.Context, authID, name string) (*user.User, error)
}
