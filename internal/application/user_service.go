package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/helpers"
	"github.com/devconnect/devconnect-api/pkg/mailer"
)

// UserService handles registration, login, and the identity-adjacent pieces
// the aggregates depend on (author snapshots, avatar references).
type UserService struct {
	Repo      repo.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, GCS: gcs, GCSBucket: gcsBucket, Pub: pub, Logger: logger}
}

// Register creates a user with a bcrypt-hashed password and a gravatar-derived
// avatar, enqueues a welcome email (best effort), and issues a token.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, "", ErrUserExists
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Avatar:   helpers.GravatarURL(email),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", err
	}

	if s.Pub != nil {
		job := mailer.EmailJob{To: u.Email, Template: "welcome", Data: map[string]any{"Name": u.Name}}
		if pErr := s.Pub.PublishJSON(ctx, job); pErr != nil && s.Logger != nil {
			helpers.LogError(s.Logger, "welcome email enqueue failed", pErr, logrus.Fields{"user_id": u.ID})
		}
	}

	token, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login validates email/password and issues a token. Unknown email and wrong
// password produce the same error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	return s.JWT.GenerateToken(u.ID)
}

// Get returns the user behind a resolved id (password never leaves the entity
// on the wire; the json tag hides it).
func (s *UserService) Get(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, NotFound("User")
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and updates the user's avatar reference.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return "", NotFound("User")
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("avatar storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))

	c, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	url, err := helpers.UploadObject(c, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdateAvatar(userID, url); err != nil {
		return "", err
	}
	return url, nil
}
