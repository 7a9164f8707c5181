package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/domain/file"
	domain "homedrive-api/internal/domain/share"
	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/mq"
	fileDTO "homedrive-api/internal/interface/api/rest/dto/file"
)

type ShareService struct {
	shareRepository domain.Repository
	fileRepository  file.Repository
	userRepository  user.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
	guard           accessGuard
}

func NewShareService(
	shareRepository domain.Repository,
	fileRepository file.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ShareService {
	return &ShareService{
		shareRepository: shareRepository,
		fileRepository:  fileRepository,
		userRepository:  userRepository,
		mq:              mq,
		mCounter:        mCounter,
		guard: accessGuard{
			userRepository: userRepository,
			fileRepository: fileRepository,
		},
	}
}

// Create grants the recipient read access to the file, owner only.
// Idempotent: an existing grant for the pair is returned unchanged.
func (ss *ShareService) Create(ctx context.Context, authID string, fileUUID uuid.UUID, recipientEmail string) (*domain.Share, error) {
	u, f, recipient, err := ss.guard.userFileRecipient(ctx, authID, fileUUID, recipientEmail)
	if err != nil {
		return nil, err
	}
	if f.OwnerUUID != u.UUID {
		return nil, ErrNotOwner
	}

	existing, err := ss.shareRepository.FetchShare(ctx, f.UUID, recipient.UUID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	s, err := ss.shareRepository.CreateShare(ctx, f.UUID, recipient.UUID)
	if err != nil {
		return nil, err
	}

	ss.publish(mq.ActionShared, u, f)
	ss.mCounter.WithLabelValues("shares_created_total").Inc()

	return s, nil
}

// Delete revokes the grant, owner only. A missing grant is a no-op success
// returning nil, not an error.
func (ss *ShareService) Delete(ctx context.Context, authID string, fileUUID uuid.UUID, recipientEmail string) (*domain.Share, error) {
	u, f, recipient, err := ss.guard.userFileRecipient(ctx, authID, fileUUID, recipientEmail)
	if err != nil {
		return nil, err
	}
	if f.OwnerUUID != u.UUID {
		return nil, ErrNotOwner
	}

	s, err := ss.shareRepository.DeleteShare(ctx, f.UUID, recipient.UUID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	ss.publish(mq.ActionUnshared, u, f)
	ss.mCounter.WithLabelValues("shares_deleted_total").Inc()

	return s, nil
}

// SharedWithUser lists the files other users granted to the caller. The
// path user id must match the session identity.
func (ss *ShareService) SharedWithUser(ctx context.Context, authID string, userUUID user.UUID) (file.Files, error) {
	u, err := ss.userRepository.FetchUserByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.UUID != userUUID {
		return nil, ErrNotOwner
	}

	return ss.shareRepository.FetchSharedFiles(ctx, userUUID)
}

func (ss *ShareService) publish(action string, u *user.User, f *file.File) {
	ss.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		UserUUID: u.UUID.String(),
		Payload:  fileDTO.ToResponseFile(*f),
	}
}
