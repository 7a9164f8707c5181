package user

import (
	"context"
)

type Repository interface {
	FetchUserByAuthID(ctx context.Context, authID string) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUserName(ctx context.Context, authID, name string) (*User, error)
}
