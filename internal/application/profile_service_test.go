package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
)

func newProfileFixture(t *testing.T) (*ProfileService, *fakeProfileRepo, *fakeUserRepo) {
	t.Helper()
	profiles := newFakeProfileRepo()
	users := newFakeUserRepo()
	require.NoError(t, users.Create(&entity.User{ID: "alice", Name: "Alice", Email: "a@x.dev"}))
	return NewProfileService(profiles, users, nil, nil, "", nil, nil), profiles, users
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, SplitSkills("Go, SQL"))
	assert.Equal(t, []string{"Go"}, SplitSkills("  Go  "))
	assert.Equal(t, []string{"a", "b"}, SplitSkills("a,,b,"))
	assert.Empty(t, SplitSkills(" , "))

	// Splitting an already-split-and-rejoined value changes nothing.
	once := SplitSkills("Go , SQL,React")
	assert.Equal(t, once, SplitSkills("Go,SQL,React"))
}

func TestGetMineWithoutProfile(t *testing.T) {
	svc, _, _ := newProfileFixture(t)

	_, err := svc.GetMine("alice")
	require.EqualError(t, err, "There is no profile for this user")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUpsertCreatesThenMerges(t *testing.T) {
	svc, _, _ := newProfileFixture(t)
	ctx := context.Background()

	p, err := svc.Upsert(ctx, "alice", ProfileInput{
		Status:   "Developer",
		Skills:   "Go, SQL",
		Company:  "Acme",
		Bio:      "hi",
		Youtube:  "yt",
		Linkedin: "li",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "alice", p.UserID)
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	assert.Equal(t, "Acme", p.Company)
	assert.Equal(t, "yt", p.Social.Youtube)

	// Second submission: required fields replace, blank optionals are kept,
	// social is replaced wholesale.
	p2, err := svc.Upsert(ctx, "alice", ProfileInput{
		Status: "Senior Developer",
		Skills: "Go",
		Bio:    "updated bio",
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, p2.ID)
	assert.Equal(t, "Senior Developer", p2.Status)
	assert.Equal(t, []string{"Go"}, p2.Skills)
	assert.Equal(t, "Acme", p2.Company, "blank optional must not clear the stored value")
	assert.Equal(t, "updated bio", p2.Bio)
	assert.Empty(t, p2.Social.Youtube, "social links are replaced wholesale")
}

func TestUpsertLeavesCollectionsAlone(t *testing.T) {
	svc, _, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)
	_, err = svc.AddExperience(ctx, "alice", ExperienceInput{Title: "Engineer", Company: "Acme", From: "2020-01-01"})
	require.NoError(t, err)

	p, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev II", Skills: "Go"})
	require.NoError(t, err)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Engineer", p.Experience[0].Title)
}

func TestExperienceLifecycle(t *testing.T) {
	svc, repo, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	exp, err := svc.AddExperience(ctx, "alice", ExperienceInput{Title: "First", Company: "A", From: "2018"})
	require.NoError(t, err)
	require.Len(t, exp, 1)
	firstID := exp[0].ID
	require.NotEmpty(t, firstID)

	exp, err = svc.AddExperience(ctx, "alice", ExperienceInput{Title: "Second", Company: "B", From: "2020"})
	require.NoError(t, err)
	require.Len(t, exp, 2)
	assert.Equal(t, "Second", exp[0].Title, "newest entry sits at index 0")

	// Update relocates the entry to the tail.
	exp, err = svc.UpdateExperience(ctx, "alice", firstID, ExperienceInput{Title: "First updated", Company: "A", From: "2018"})
	require.NoError(t, err)
	require.Len(t, exp, 2)
	assert.Equal(t, "Second", exp[0].Title)
	assert.Equal(t, firstID, exp[1].ID)
	assert.Equal(t, "First updated", exp[1].Title)

	exp, err = svc.RemoveExperience(ctx, "alice", firstID)
	require.NoError(t, err)
	require.Len(t, exp, 1)
	assert.Equal(t, "Second", exp[0].Title)

	stored, err := repo.GetByUser("alice")
	require.NoError(t, err)
	assert.Len(t, stored.Experience, 1)
}

func TestExperienceMutationsOnMissingEntry(t *testing.T) {
	svc, repo, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)
	savesBefore := repo.saves

	_, err = svc.UpdateExperience(ctx, "alice", "missing", ExperienceInput{Title: "x", Company: "y", From: "z"})
	require.EqualError(t, err, "Experience not found")
	assert.Equal(t, KindEntryNotFound, KindOf(err))

	_, err = svc.RemoveExperience(ctx, "alice", "missing")
	require.EqualError(t, err, "Experience not found")

	assert.Equal(t, savesBefore, repo.saves, "failed transforms must not persist")
}

func TestExperienceMutationsWithoutProfile(t *testing.T) {
	svc, _, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.AddExperience(ctx, "alice", ExperienceInput{Title: "x", Company: "y", From: "z"})
	require.EqualError(t, err, "Profile not found")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestEducationLifecycle(t *testing.T) {
	svc, _, _ := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	edu, err := svc.AddEducation(ctx, "alice", EducationInput{School: "MIT", Degree: "BSc", FieldOfStudy: "CS", From: "2014"})
	require.NoError(t, err)
	require.Len(t, edu, 1)
	id := edu[0].ID

	edu, err = svc.UpdateEducation(ctx, "alice", id, EducationInput{School: "MIT", Degree: "MSc", FieldOfStudy: "CS", From: "2014"})
	require.NoError(t, err)
	assert.Equal(t, "MSc", edu[len(edu)-1].Degree)

	_, err = svc.UpdateEducation(ctx, "alice", "missing", EducationInput{School: "a", Degree: "b", FieldOfStudy: "c", From: "d"})
	require.EqualError(t, err, "Education not found")

	edu, err = svc.RemoveEducation(ctx, "alice", id)
	require.NoError(t, err)
	assert.Empty(t, edu)
}

func TestGetByUserMissing(t *testing.T) {
	svc, _, _ := newProfileFixture(t)

	_, err := svc.GetByUser("nobody")
	require.EqualError(t, err, "Profile not found")
}

func TestDeleteProfileCascadesToUser(t *testing.T) {
	svc, profiles, users := newProfileFixture(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "alice", ProfileInput{Status: "Dev", Skills: "Go"})
	require.NoError(t, err)

	p, u, err := svc.Delete(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.UserID)
	assert.Equal(t, "alice", u.ID)

	_, err = profiles.GetByUser("alice")
	assert.Error(t, err)
	_, err = users.GetByID("alice")
	assert.Error(t, err)
}

func TestDeleteProfileWithoutProfileStillRemovesUser(t *testing.T) {
	svc, _, users := newProfileFixture(t)

	p, u, err := svc.Delete(context.Background(), "alice")
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Equal(t, "alice", u.ID)

	_, err = users.GetByID("alice")
	assert.Error(t, err)
}
