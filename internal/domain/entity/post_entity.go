package entity

import "time"

// Post is an aggregate root owning the likes and comments collections.
// Name and Avatar are a snapshot of the author taken at creation time; they
// are not re-synced when the User changes.
type Post struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date"`
}

// Like carries only the id of the liking user. At most one Like per user id
// may exist on a post.
type Like struct {
	UserID string `json:"user"`
}

// Comment is an embedded entry on Post with its own author snapshot.
type Comment struct {
	ID     string    `json:"id"`
	UserID string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// NewPost builds a post for the given author, snapshotting name and avatar.
func NewPost(user *User, text string) *Post {
	return &Post{
		UserID:   user.ID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    []Like{},
		Comments: []Comment{},
	}
}

// LikedBy reports whether the user already has a like on the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike records a like at the front of the sequence. Returns false when the
// user has already liked the post; the sequence is left untouched in that case.
func (p *Post) AddLike(userID string) bool {
	if p.LikedBy(userID) {
		return false
	}
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
	return true
}

// RemoveLike removes the user's like. Returns false when no like by the user
// exists.
func (p *Post) RemoveLike(userID string) bool {
	if !p.LikedBy(userID) {
		return false
	}
	out := make([]Like, 0, len(p.Likes))
	for _, l := range p.Likes {
		if l.UserID != userID {
			out = append(out, l)
		}
	}
	p.Likes = out
	return true
}

// AddComment inserts the comment at the front of the sequence.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// CommentByID locates an embedded comment by its generated id.
func (p *Post) CommentByID(id string) (Comment, bool) {
	for _, c := range p.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// RemoveComment deletes the comment with the given id, preserving the order of
// the remaining entries. Returns false when no comment matches.
func (p *Post) RemoveComment(id string) bool {
	out := make([]Comment, 0, len(p.Comments))
	found := false
	for _, c := range p.Comments {
		if c.ID == id {
			found = true
			continue
		}
		out = append(out, c)
	}
	if !found {
		return false
	}
	p.Comments = out
	return true
}
