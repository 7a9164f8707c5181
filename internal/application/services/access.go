package services

import (
	"context"

	"github.com/google/uuid"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/user"
)

// accessGuard resolves the acting user and the target resources for the
// data-access endpoints. It deliberately decides nothing about permission:
// existence checks happen here (not-found before any ownership comparison),
// the owner/grant comparison stays with the caller.
type accessGuard struct {
	userRepository user.Repository
	fileRepository file.Repository
}

func (g accessGuard) userFile(ctx context.Context, authID string, fileUUID uuid.UUID) (*user.User, *file.File, error) {
	u, err := g.userRepository.FetchUserByAuthID(ctx, authID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, ErrUserNotFound
	}

	f, err := g.fileRepository.FetchFileByID(ctx, fileUUID)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, ErrFileNotFound
	}

	return u, f, nil
}

func (g accessGuard) userFileRecipient(
	ctx context.Context,
	authID string,
	fileUUID uuid.UUID,
	recipientEmail string,
) (*user.User, *file.File, *user.User, error) {
	u, f, err := g.userFile(ctx, authID, fileUUID)
	if err != nil {
		return nil, nil, nil, err
	}

	recipient, err := g.userRepository.FetchUserByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, nil, nil, err
	}
	if recipient == nil {
		return nil, nil, nil, ErrRecipientNotFound
	}

	return u, f, recipient, nil
}
