package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"homedrive-api/internal/application/ports"
	domain "homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/share"
	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/mq"
	fileDTO "homedrive-api/internal/interface/api/rest/dto/file"
)

// downloadURLTTL bounds how long a handed-out payload link stays valid.
const downloadURLTTL = time.Hour

type FileService struct {
	storage         ports.ObjectStorage
	fileRepository  domain.Repository
	shareRepository share.Repository
	userRepository  user.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
	guard           accessGuard
}

func NewFileService(
	storage ports.ObjectStorage,
	fileRepository domain.Repository,
	shareRepository share.Repository,
	userRepository user.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		storage:         storage,
		fileRepository:  fileRepository,
		shareRepository: shareRepository,
		userRepository:  userRepository,
		mq:              mq,
		mCounter:        mCounter,
		guard: accessGuard{
			userRepository: userRepository,
			fileRepository: fileRepository,
		},
	}
}

// Upload creates the metadata row first and streams the payload to object
// storage second. The two writes are not transactional: a storage failure
// after the insert leaves an orphaned row, surfaced as an error without
// compensation.
func (fs *FileService) Upload(ctx context.Context, authID string, in *multipart.FileHeader) (*domain.File, error) {
	u, err := fs.userRepository.FetchUserByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	name, ext := splitFileName(sanitizeFileName(filepath.Base(in.Filename)))
	f := &domain.File{
		Name:       name,
		Extension:  ext,
		SizeBytes:  uint64(in.Size),
		Bucket:     fs.storage.GetBucket(),
		StorageKey: uuid.New().String(),
	}

	out, err := fs.fileRepository.CreateFile(ctx, u.UUID, f)
	if err != nil {
		return nil, err
	}
	out.Owner = u.DisplayName()

	src, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	contentType := in.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err = fs.storage.PutObject(ctx, out.StorageKey, contentType, src, in.Size); err != nil {
		return nil, err
	}

	fs.publish(mq.ActionUploaded, u, out)
	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return out, nil
}

// DownloadURL returns a time-limited payload link. Reading is allowed for
// the owner and for anyone holding a share grant on the file.
func (fs *FileService) DownloadURL(ctx context.Context, authID string, fileUUID uuid.UUID) (string, error) {
	u, f, err := fs.guard.userFile(ctx, authID, fileUUID)
	if err != nil {
		return "", err
	}

	if f.OwnerUUID != u.UUID {
		granted, err := fs.shareRepository.FetchShare(ctx, f.UUID, u.UUID)
		if err != nil {
			return "", err
		}
		if granted == nil {
			return "", ErrNoAccess
		}
	}

	return fs.storage.PresignGetURL(ctx, f.StorageKey, downloadURLTTL)
}

// Delete removes the grants, the metadata row and then the payload, owner
// only. A storage failure after the row delete leaves an orphaned payload,
// surfaced as an error without compensation.
func (fs *FileService) Delete(ctx context.Context, authID string, fileUUID uuid.UUID) error {
	u, f, err := fs.guard.userFile(ctx, authID, fileUUID)
	if err != nil {
		return err
	}
	if f.OwnerUUID != u.UUID {
		return ErrNotOwner
	}

	// Grants must go before the row: they reference it, and a grant that
	// outlives its file would keep answering "shared" for a file that no
	// longer exists.
	if err = fs.shareRepository.DeleteFileShares(ctx, f.UUID); err != nil {
		return err
	}

	deleted, err := fs.fileRepository.DeleteFile(ctx, f.UUID)
	if err != nil {
		return err
	}
	if deleted == nil {
		// Raced with another delete of the same file; the payload cleanup
		// belongs to whoever won.
		return nil
	}

	if err = fs.storage.DeleteObject(ctx, deleted.StorageKey); err != nil {
		return err
	}

	fs.publish(mq.ActionDeleted, u, deleted)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

// OwnFiles lists the caller's files. The path user id must match the
// session identity.
func (fs *FileService) OwnFiles(ctx context.Context, authID string, userUUID user.UUID) (domain.Files, error) {
	u, err := fs.userRepository.FetchUserByAuthID(ctx, authID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if u.UUID != userUUID {
		return nil, ErrNotOwner
	}

	return fs.fileRepository.FetchOwnerFiles(ctx, userUUID)
}

func (fs *FileService) publish(action string, u *user.User, f *domain.File) {
	fs.mq.GetInputChan() <- mq.Event{
		Id:       uuid.New(),
		TS:       time.Now(),
		Action:   action,
		UserUUID: u.UUID.String(),
		Payload:  fileDTO.ToResponseFile(*f),
	}
}
