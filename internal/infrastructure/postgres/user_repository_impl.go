package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// ErrNotFound aliases the shared store miss signal so callers inside this
// package read naturally.
var ErrNotFound = repository.ErrNotFound

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, avatar)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, u.Name, u.Email, u.Password, u.Avatar)

	return row.Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Avatar, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Avatar, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) UpdateAvatar(id, avatar string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `UPDATE users SET avatar = $1 WHERE id = $2`, avatar, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(id string) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		DELETE FROM users
		WHERE id = $1
		RETURNING id, name, email, password_hash, avatar, created_at
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Avatar, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
