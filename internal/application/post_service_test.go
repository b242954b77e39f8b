package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

func newPostFixture(t *testing.T) (*PostService, *fakePostRepo, *fakeUserRepo) {
	t.Helper()
	posts := newFakePostRepo()
	users := newFakeUserRepo()
	require.NoError(t, users.Create(&entity.User{ID: "alice", Name: "Alice", Email: "a@x.dev", Avatar: "av-a"}))
	require.NoError(t, users.Create(&entity.User{ID: "bob", Name: "Bob", Email: "b@x.dev", Avatar: "av-b"}))
	return NewPostService(posts, users, nil), posts, users
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	p, err := svc.Create("alice", "hello world")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "alice", p.UserID)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, "av-a", p.Avatar)
}

func TestCreatePostUnknownUser(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	_, err := svc.Create("ghost", "hello")
	require.EqualError(t, err, "User not found")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeletePostOwnerOnly(t *testing.T) {
	svc, repo, _ := newPostFixture(t)
	p, err := svc.Create("alice", "mine")
	require.NoError(t, err)

	_, _, err = svc.Delete("bob", p.ID)
	require.EqualError(t, err, "User not authorized")
	assert.Equal(t, KindForbidden, KindOf(err))
	_, err = repo.GetByID(p.ID)
	assert.NoError(t, err, "rejected delete must not remove the post")

	removed, remaining, err := svc.Delete("alice", p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, removed.ID)
	assert.Empty(t, remaining)
}

func TestDeletePostMissing(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	_, _, err := svc.Delete("alice", "nope")
	require.EqualError(t, err, "Post not found")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestLikeThenDuplicateLike(t *testing.T) {
	svc, repo, _ := newPostFixture(t)
	p, err := svc.Create("alice", "likeable")
	require.NoError(t, err)

	likes, err := svc.Like("bob", p.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "bob", likes[0].UserID)
	savesAfterFirst := repo.saves

	_, err = svc.Like("bob", p.ID)
	require.EqualError(t, err, "Post already liked")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, savesAfterFirst, repo.saves, "failed transform must not persist")

	stored, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Likes, 1)
}

func TestUnlikeWithoutLike(t *testing.T) {
	svc, repo, _ := newPostFixture(t)
	p, err := svc.Create("alice", "x")
	require.NoError(t, err)

	_, err = svc.Unlike("bob", p.ID)
	require.EqualError(t, err, "Post has not yet been liked")
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Zero(t, repo.saves)

	_, err = svc.Like("bob", p.ID)
	require.NoError(t, err)
	likes, err := svc.Unlike("bob", p.ID)
	require.NoError(t, err)
	assert.Empty(t, likes)
}

func TestLikesNewestFirst(t *testing.T) {
	svc, _, _ := newPostFixture(t)
	p, err := svc.Create("alice", "x")
	require.NoError(t, err)

	_, err = svc.Like("alice", p.ID)
	require.NoError(t, err)
	likes, err := svc.Like("bob", p.ID)
	require.NoError(t, err)

	require.Len(t, likes, 2)
	assert.Equal(t, "bob", likes[0].UserID)
	assert.Equal(t, "alice", likes[1].UserID)
}

func TestAddCommentSnapshotsCommenter(t *testing.T) {
	svc, _, _ := newPostFixture(t)
	p, err := svc.Create("alice", "x")
	require.NoError(t, err)

	comments, err := svc.AddComment("bob", p.ID, "nice post")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.NotEmpty(t, comments[0].ID)
	assert.Equal(t, "bob", comments[0].UserID)
	assert.Equal(t, "Bob", comments[0].Name)
	assert.Equal(t, "av-b", comments[0].Avatar)
	assert.False(t, comments[0].Date.IsZero())

	comments, err = svc.AddComment("alice", p.ID, "thanks")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "alice", comments[0].UserID)
}

func TestRemoveCommentOwnedByCommenter(t *testing.T) {
	svc, repo, _ := newPostFixture(t)
	p, err := svc.Create("alice", "x")
	require.NoError(t, err)

	comments, err := svc.AddComment("bob", p.ID, "mine to remove")
	require.NoError(t, err)
	commentID := comments[0].ID

	// The post owner does not own someone else's comment.
	_, err = svc.RemoveComment("alice", p.ID, commentID)
	require.EqualError(t, err, "User not authorized")
	assert.Equal(t, KindForbidden, KindOf(err))

	stored, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Comments, 1)

	remaining, err := svc.RemoveComment("bob", p.ID, commentID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRemoveCommentMissingEntry(t *testing.T) {
	svc, _, _ := newPostFixture(t)
	p, err := svc.Create("alice", "x")
	require.NoError(t, err)

	_, err = svc.RemoveComment("alice", p.ID, "no-such-comment")
	require.EqualError(t, err, "Comment not found")
	assert.Equal(t, KindEntryNotFound, KindOf(err))
}
