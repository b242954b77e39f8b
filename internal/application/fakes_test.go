package application

import (
	"github.com/devconnect/devconnect-api/internal/domain/entity"
	"github.com/devconnect/devconnect-api/internal/domain/repository"
)

// In-memory repositories backing the service tests. They mimic the store
// contract: misses return repository.ErrNotFound, Save replaces wholesale.

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.seq++
	if u.ID == "" {
		u.ID = "user-" + string(rune('0'+r.seq))
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateAvatar(id, avatar string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Avatar = avatar
	return nil
}

func (r *fakeUserRepo) Delete(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.users, id)
	return u, nil
}

type fakeProfileRepo struct {
	byUser map[string]*entity.Profile
	saves  int
	seq    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: map[string]*entity.Profile{}}
}

func clone(p *entity.Profile) *entity.Profile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Experience = append([]entity.Experience(nil), p.Experience...)
	cp.Education = append([]entity.Education(nil), p.Education...)
	return &cp
}

func (r *fakeProfileRepo) GetByUser(userID string) (*entity.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clone(p), nil
}

func (r *fakeProfileRepo) GetAll() ([]entity.Profile, error) {
	out := make([]entity.Profile, 0, len(r.byUser))
	for _, p := range r.byUser {
		out = append(out, *clone(p))
	}
	return out, nil
}

func (r *fakeProfileRepo) Insert(p *entity.Profile) error {
	r.seq++
	p.ID = "profile-" + string(rune('0'+r.seq))
	r.byUser[p.UserID] = clone(p)
	return nil
}

func (r *fakeProfileRepo) Save(p *entity.Profile) error {
	stored, ok := r.byUser[p.UserID]
	if !ok || stored.ID != p.ID {
		return repository.ErrNotFound
	}
	r.byUser[p.UserID] = clone(p)
	r.saves++
	return nil
}

func (r *fakeProfileRepo) DeleteByUser(userID string) (*entity.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.byUser, userID)
	return p, nil
}

type fakePostRepo struct {
	posts map[string]*entity.Post
	order []string
	saves int
	seq   int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: map[string]*entity.Post{}}
}

func clonePost(p *entity.Post) *entity.Post {
	cp := *p
	cp.Likes = append([]entity.Like(nil), p.Likes...)
	cp.Comments = append([]entity.Comment(nil), p.Comments...)
	return &cp
}

func (r *fakePostRepo) GetByID(id string) (*entity.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return clonePost(p), nil
}

func (r *fakePostRepo) GetAll() ([]entity.Post, error) {
	out := make([]entity.Post, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, *clonePost(r.posts[r.order[i]]))
	}
	return out, nil
}

func (r *fakePostRepo) GetByUser(userID string) ([]entity.Post, error) {
	out := make([]entity.Post, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		if p := r.posts[r.order[i]]; p.UserID == userID {
			out = append(out, *clonePost(p))
		}
	}
	return out, nil
}

func (r *fakePostRepo) Insert(p *entity.Post) error {
	r.seq++
	if p.ID == "" {
		p.ID = "post-" + string(rune('0'+r.seq))
	}
	r.posts[p.ID] = clonePost(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePostRepo) Save(p *entity.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.posts[p.ID] = clonePost(p)
	r.saves++
	return nil
}

func (r *fakePostRepo) Delete(id string) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
