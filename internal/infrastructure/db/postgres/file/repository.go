package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/db/postgres"
)

// ErrOwnerNotFound means the owner uuid passed to CreateFile resolved to no
// user row, so nothing was inserted.
var ErrOwnerNotFound = errors.New("file owner not found")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFileByID(ctx context.Context, fileUUID uuid.UUID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, fileUUID).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerUUID,
		&f.OwnerName,
		&f.OwnerMail,

		&f.Name,
		&f.Extension,
		&f.SizeBytes,
		&f.Bucket,
		&f.StorageKey,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchOwnerFiles(ctx context.Context, ownerUUID user.UUID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectOwnerFiles, ownerUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UUID,
			&f.OwnerUUID,
			&f.OwnerName,
			&f.OwnerMail,

			&f.Name,
			&f.Extension,
			&f.SizeBytes,
			&f.Bucket,
			&f.StorageKey,

			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return FromDBModels(&fs), nil
}

func (r *Repository) CreateFile(ctx context.Context, ownerUUID user.UUID, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		ownerUUID, req.Name, req.Extension, req.SizeBytes, req.Bucket, req.StorageKey,
	).Scan(
		&f.ID,
		&f.UUID,

		&f.Name,
		&f.Extension,
		&f.SizeBytes,
		&f.Bucket,
		&f.StorageKey,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	f.OwnerUUID = ownerUUID

	return fromDBModel(f), err
}

func (r *Repository) DeleteFile(ctx context.Context, fileUUID uuid.UUID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, DeleteFileByID, fileUUID).Scan(
		&f.ID,
		&f.UUID,
		&f.OwnerUUID,
		&f.OwnerName,
		&f.OwnerMail,

		&f.Name,
		&f.Extension,
		&f.SizeBytes,
		&f.Bucket,
		&f.StorageKey,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}
