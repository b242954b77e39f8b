package repository

import "github.com/devconnect/devconnect-api/internal/domain/entity"

// ProfileRepository is the persistence boundary for the Profile aggregate.
// Save replaces the stored value wholesale (last writer wins); the store never
// interprets business authorization.
type ProfileRepository interface {
	GetByUser(userID string) (*entity.Profile, error)
	GetAll() ([]entity.Profile, error)
	Insert(p *entity.Profile) error
	Save(p *entity.Profile) error
	DeleteByUser(userID string) (*entity.Profile, error)
}
