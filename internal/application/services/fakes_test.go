package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/share"
	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/mq"
)

type FakeUserRepo struct {
	FetchUserByAuthIDFunc func(ctx context.Context, authID string) (*user.User, error)
	FetchUserByEmailFunc  func(ctx context.Context, email string) (*user.User, error)
	CreateUserFunc        func(ctx context.Context, req user.User) (*user.User, error)
	UpdateUserNameFunc    func(ctx context.Context, authID, name string) (*user.User, error)
}

func (f *FakeUserRepo) FetchUserByAuthID(ctx context.Context, authID string) (*user.User, error) {
	if f.FetchUserByAuthIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByAuthIDFunc(ctx, authID)
}
func (f *FakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepo) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *FakeUserRepo) UpdateUserName(ctx context.Context, authID, name string) (*user.User, error) {
	if f.UpdateUserNameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateUserNameFunc(ctx, authID, name)
}

type FakeFileRepo struct {
	FetchFileByIDFunc   func(ctx context.Context, fileUUID uuid.UUID) (*file.File, error)
	FetchOwnerFilesFunc func(ctx context.Context, ownerUUID user.UUID) (file.Files, error)
	CreateFileFunc      func(ctx context.Context, ownerUUID user.UUID, req *file.File) (*file.File, error)
	DeleteFileFunc      func(ctx context.Context, fileUUID uuid.UUID) (*file.File, error)
}

func (f *FakeFileRepo) FetchFileByID(ctx context.Context, fileUUID uuid.UUID) (*file.File, error) {
	if f.FetchFileByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchFileByIDFunc(ctx, fileUUID)
}
func (f *FakeFileRepo) FetchOwnerFiles(ctx context.Context, ownerUUID user.UUID) (file.Files, error) {
	if f.FetchOwnerFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchOwnerFilesFunc(ctx, ownerUUID)
}
func (f *FakeFileRepo) CreateFile(ctx context.Context, ownerUUID user.UUID, req *file.File) (*file.File, error) {
	if f.CreateFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFileFunc(ctx, ownerUUID, req)
}
func (f *FakeFileRepo) DeleteFile(ctx context.Context, fileUUID uuid.UUID) (*file.File, error) {
	if f.DeleteFileFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteFileFunc(ctx, fileUUID)
}

type FakeShareRepo struct {
	FetchShareFunc       func(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error)
	CreateShareFunc      func(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error)
	DeleteShareFunc      func(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error)
	DeleteFileSharesFunc func(ctx context.Context, fileUUID uuid.UUID) error
	FetchSharedFilesFunc func(ctx context.Context, recipientUUID user.UUID) (file.Files, error)
}

func (f *FakeShareRepo) FetchShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	if f.FetchShareFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchShareFunc(ctx, fileUUID, recipientUUID)
}
func (f *FakeShareRepo) CreateShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	if f.CreateShareFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateShareFunc(ctx, fileUUID, recipientUUID)
}
func (f *FakeShareRepo) DeleteShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	if f.DeleteShareFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteShareFunc(ctx, fileUUID, recipientUUID)
}
func (f *FakeShareRepo) DeleteFileShares(ctx context.Context, fileUUID uuid.UUID) error {
	if f.DeleteFileSharesFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFileSharesFunc(ctx, fileUUID)
}
func (f *FakeShareRepo) FetchSharedFiles(ctx context.Context, recipientUUID user.UUID) (file.Files, error) {
	if f.FetchSharedFilesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchSharedFilesFunc(ctx, recipientUUID)
}

type FakeStorage struct {
	PutObjectFunc     func(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	DeleteObjectFunc  func(ctx context.Context, key string) error
	PresignGetURLFunc func(ctx context.Context, key string, expires time.Duration) (string, error)
}

func (f *FakeStorage) PutObject(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if f.PutObjectFunc == nil {
		return errors.New("not used")
	}
	return f.PutObjectFunc(ctx, key, contentType, body, size)
}
func (f *FakeStorage) DeleteObject(ctx context.Context, key string) error {
	if f.DeleteObjectFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteObjectFunc(ctx, key)
}
func (f *FakeStorage) PresignGetURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if f.PresignGetURLFunc == nil {
		return "", errors.New("not used")
	}
	return f.PresignGetURLFunc(ctx, key, expires)
}
func (f *FakeStorage) GetBucket() string { return "uploads-test" }

// FakeMQ buffers published events so tests can assert on them.
type FakeMQ struct {
	in chan mq.Event
}

func NewFakeMQ() *FakeMQ { return &FakeMQ{in: make(chan mq.Event, 16)} }

func (f *FakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeMQ) Init() error                                   { return nil }
func (f *FakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeMQ) GetConn() *amqp091.Connection                  { return nil }

func someUser() *user.User {
	return &user.User{
		UUID:   uuid.New(),
		AuthID: "auth0|abc123",
		Email:  "owner@example.com",
		Name:   "Owner",
	}
}

func someFile(ownerUUID user.UUID) *file.File {
	return &file.File{
		UUID:       uuid.New(),
		OwnerUUID:  ownerUUID,
		Owner:      "Owner",
		Name:       "notes",
		Extension:  "txt",
		SizeBytes:  42,
		Bucket:     "uploads-test",
		StorageKey: uuid.New().String(),
	}
}
