package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// ProfileRepository persists the Profile aggregate as a single row: root
// fields as columns, skills as text[], social/experience/education as jsonb.
// A unique index on user_id backs the at-most-one-profile-per-user invariant.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `id, user_id, company, website, location, bio, status,
	github_username, skills, social, experience, education, created_at, updated_at`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := row.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location, &p.Bio,
		&p.Status, &p.GithubUsername, &p.Skills, &p.Social, &p.Experience, &p.Education,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalizeProfile(p)
	return p, nil
}

// normalizeProfile keeps collections non-nil so they serialize as [] on the
// wire even for rows written before a column default existed.
func normalizeProfile(p *entity.Profile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []entity.Experience{}
	}
	if p.Education == nil {
		p.Education = []entity.Education{}
	}
}

func (r *ProfileRepository) GetByUser(userID string) (*entity.Profile, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
	`, userID)
	return scanProfile(row)
}

func (r *ProfileRepository) GetAll() ([]entity.Profile, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) Insert(p *entity.Profile) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, company, website, location, bio, status,
			github_username, skills, social, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, p.Skills, p.Social, p.Experience, p.Education)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Save replaces the stored aggregate value by id. Last writer wins; no merge
// happens at the store layer.
func (r *ProfileRepository) Save(p *entity.Profile) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET company = $1, website = $2, location = $3, bio = $4, status = $5,
			github_username = $6, skills = $7, social = $8, experience = $9,
			education = $10, updated_at = $11
		WHERE id = $12
	`, p.Company, p.Website, p.Location, p.Bio, p.Status, p.GithubUsername,
		p.Skills, p.Social, p.Experience, p.Education, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUser(userID string) (*entity.Profile, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		DELETE FROM profiles
		WHERE user_id = $1
		RETURNING `+profileColumns+`
	`, userID)
	return scanProfile(row)
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
