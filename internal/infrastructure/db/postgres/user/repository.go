package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"homedrive-api/internal/domain/user"
	"homedrive-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("user with this email already exists")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByAuthID(ctx context.Context, authID string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByAuthID, authID).Scan(
		&u.ID,
		&u.UUID,
		&u.AuthID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.UUID,
		&u.AuthID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.AuthID, req.Email,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.AuthID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateUserName(ctx context.Context, authID, name string) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, UpdateUserNameByAuthID, name, authID).Scan(
		&u.ID,
		&u.UUID,
		&u.AuthID,
		&u.Email,
		&u.Name,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}
