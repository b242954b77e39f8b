package repository

import "github.com/devconnect/devconnect-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	UpdateAvatar(id, avatar string) error
	Delete(id string) (*entity.User, error)
}
