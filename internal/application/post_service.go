package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
)

// PostService is the mutation engine for the Post aggregate. The ownership
// key differs per operation: the root's owner for delete, the comment entry's
// owner for comment removal, and the caller themselves for likes.
type PostService struct {
	Repo   repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(r repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Repo: r, Users: users, Logger: logger}
}

// Create builds a post for the caller, snapshotting their name and avatar.
func (s *PostService) Create(userID, text string) (*entity.Post, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, NotFound("User")
	}
	p := entity.NewPost(u, text)
	if err := s.Repo.Insert(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetAll returns every post, newest first.
func (s *PostService) GetAll() ([]entity.Post, error) {
	return s.Repo.GetAll()
}

// GetByID returns one post.
func (s *PostService) GetByID(id string) (*entity.Post, error) {
	return s.load(id)
}

// Delete removes a post. Only the root's owner may do so. Returns the removed
// post together with the caller's remaining posts.
func (s *PostService) Delete(userID, postID string) (*entity.Post, []entity.Post, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, nil, err
	}
	if p.UserID != userID {
		return nil, nil, Forbidden()
	}
	if err := s.Repo.Delete(postID); err != nil {
		return nil, nil, err
	}
	remaining, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, nil, err
	}
	return p, remaining, nil
}

// Like records the caller's like at the front of the sequence. A second like
// by the same user is rejected and nothing is persisted.
func (s *PostService) Like(userID, postID string) ([]entity.Like, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	if !p.AddLike(userID) {
		return nil, ErrAlreadyLiked
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like; rejected when none exists.
func (s *PostService) Unlike(userID, postID string) ([]entity.Like, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	if !p.RemoveLike(userID) {
		return nil, ErrNotLiked
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment inserts the caller's comment at the front of the sequence,
// snapshotting their name and avatar.
func (s *PostService) AddComment(userID, postID, text string) ([]entity.Comment, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, NotFound("User")
	}
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	p.AddComment(entity.Comment{
		ID:     uuid.NewString(),
		UserID: userID,
		Text:   text,
		Name:   u.Name,
		Avatar: u.Avatar,
		Date:   time.Now().UTC(),
	})
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// RemoveComment deletes a comment. The ownership key is the comment entry's
// owner id, not the root's: a commenter may remove their comment from someone
// else's post, and the post owner may not remove someone else's comment here.
func (s *PostService) RemoveComment(userID, postID, commentID string) ([]entity.Comment, error) {
	p, err := s.load(postID)
	if err != nil {
		return nil, err
	}
	c, ok := p.CommentByID(commentID)
	if !ok {
		return nil, EntryNotFound("Comment")
	}
	if c.UserID != userID {
		return nil, Forbidden()
	}
	p.RemoveComment(commentID)
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (s *PostService) load(id string) (*entity.Post, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NotFound("Post")
		}
		return nil, err
	}
	return p, nil
}
