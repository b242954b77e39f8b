package repository

import "github.com/devconnect/devconnect-api/internal/domain/entity"

// PostRepository is the persistence boundary for the Post aggregate.
// GetAll returns posts most-recent-first.
type PostRepository interface {
	GetByID(id string) (*entity.Post, error)
	GetAll() ([]entity.Post, error)
	GetByUser(userID string) ([]entity.Post, error)
	Insert(p *entity.Post) error
	Save(p *entity.Post) error
	Delete(id string) error
}
