package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// PostRepository persists the Post aggregate as a single row with the likes
// and comments collections as jsonb.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, user_id, body, name, avatar, likes, comments, created_at`

func scanPost(row pgx.Row) (*entity.Post, error) {
	p := &entity.Post{}
	err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Name, &p.Avatar, &p.Likes, &p.Comments, &p.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.Likes == nil {
		p.Likes = []entity.Like{}
	}
	if p.Comments == nil {
		p.Comments = []entity.Comment{}
	}
	return p, nil
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) GetAll() ([]entity.Post, error) {
	return r.query(`SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`)
}

func (r *PostRepository) GetByUser(userID string) ([]entity.Post, error) {
	return r.query(`SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`, userID)
}

func (r *PostRepository) query(sql string, args ...any) ([]entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostRepository) Insert(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, body, name, avatar, likes, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.UserID, p.Text, p.Name, p.Avatar, p.Likes, p.Comments)

	return row.Scan(&p.ID, &p.Date)
}

// Save replaces the stored aggregate value by id (last writer wins).
func (r *PostRepository) Save(p *entity.Post) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET body = $1, likes = $2, comments = $3
		WHERE id = $4
	`, p.Text, p.Likes, p.Comments, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(id string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
