package share

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"homedrive-api/internal/domain/file"
	"homedrive-api/internal/domain/share"
	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/db/postgres"
	fileDB "homedrive-api/internal/infrastructure/db/postgres/file"
)

// ErrReferenceNotFound means the file or recipient uuid passed to
// CreateShare resolved to no row, so no grant was inserted.
var ErrReferenceNotFound = errors.New("share file or recipient not found")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) share.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	s := new(Share)
	err := r.db.QueryRow(ctx, SelectShare, fileUUID, recipientUUID).Scan(
		&s.ID,
		&s.UUID,
		&s.FileUUID,
		&s.RecipientUUID,

		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) CreateShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	s := new(Share)

	err := r.db.QueryRow(ctx, InsertShare, fileUUID, recipientUUID).Scan(
		&s.ID,
		&s.UUID,
		&s.FileUUID,
		&s.RecipientUUID,

		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrReferenceNotFound
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) DeleteShare(ctx context.Context, fileUUID uuid.UUID, recipientUUID user.UUID) (*share.Share, error) {
	s := new(Share)
	err := r.db.QueryRow(ctx, DeleteShareByPair, fileUUID, recipientUUID).Scan(
		&s.ID,
		&s.UUID,
		&s.FileUUID,
		&s.RecipientUUID,

		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) DeleteFileShares(ctx context.Context, fileUUID uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteSharesByFile, fileUUID)
	return err
}

func (r *Repository) FetchSharedFiles(ctx context.Context, recipientUUID user.UUID) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectSharedFiles, recipientUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs fileDB.Files
	for rows.Next() {
		f := new(fileDB.File)

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

	return fileDB.FromDBModels(&fs), nil
}
