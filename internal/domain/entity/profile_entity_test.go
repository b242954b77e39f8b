package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfileCollectionsSerializeAsEmptyArrays(t *testing.T) {
	p := NewProfile("u1")

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))
	assert.JSONEq(t, `[]`, string(m["skills"]))
	assert.JSONEq(t, `[]`, string(m["experience"]))
	assert.JSONEq(t, `[]`, string(m["education"]))
}

func TestAddExperiencePrepends(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a", Title: "first"})
	p.AddExperience(Experience{ID: "b", Title: "second"})

	require.Len(t, p.Experience, 2)
	assert.Equal(t, "b", p.Experience[0].ID)
	assert.Equal(t, "a", p.Experience[1].ID)
}

func TestUpdateExperienceRelocatesToTail(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a"})
	p.AddExperience(Experience{ID: "b"})
	p.AddExperience(Experience{ID: "c"}) // order: c, b, a

	ok := p.UpdateExperience("b", Experience{Title: "updated"})
	require.True(t, ok)

	require.Len(t, p.Experience, 3)
	assert.Equal(t, "c", p.Experience[0].ID)
	assert.Equal(t, "a", p.Experience[1].ID)
	assert.Equal(t, "b", p.Experience[2].ID)
	assert.Equal(t, "updated", p.Experience[2].Title)
}

func TestUpdateExperienceKeepsID(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a", Title: "old"})

	ok := p.UpdateExperience("a", Experience{ID: "ignored", Title: "new"})
	require.True(t, ok)
	assert.Equal(t, "a", p.Experience[0].ID)
	assert.Equal(t, "new", p.Experience[0].Title)
}

func TestUpdateExperienceUnknownIDLeavesSequenceUntouched(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a"})

	ok := p.UpdateExperience("missing", Experience{Title: "x"})
	assert.False(t, ok)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "a", p.Experience[0].ID)
}

func TestRemoveExperiencePreservesOrder(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a"})
	p.AddExperience(Experience{ID: "b"})
	p.AddExperience(Experience{ID: "c"}) // order: c, b, a

	require.True(t, p.RemoveExperience("b"))
	require.Len(t, p.Experience, 2)
	assert.Equal(t, "c", p.Experience[0].ID)
	assert.Equal(t, "a", p.Experience[1].ID)

	assert.False(t, p.RemoveExperience("b"))
}

func TestEducationMirrorsExperienceSemantics(t *testing.T) {
	p := NewProfile("u1")
	p.AddEducation(Education{ID: "a", School: "MIT"})
	p.AddEducation(Education{ID: "b", School: "CMU"})

	assert.Equal(t, "b", p.Education[0].ID)

	require.True(t, p.UpdateEducation("b", Education{School: "Stanford"}))
	assert.Equal(t, "a", p.Education[0].ID)
	assert.Equal(t, "b", p.Education[1].ID)
	assert.Equal(t, "Stanford", p.Education[1].School)

	assert.False(t, p.UpdateEducation("missing", Education{}))
	require.True(t, p.RemoveEducation("a"))
	require.Len(t, p.Education, 1)
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	p := NewProfile("u1")
	p.AddExperience(Experience{ID: "a", Title: "keep"})
	p.AddExperience(Experience{ID: "b"})

	before := p.Experience
	require.True(t, p.RemoveExperience("b"))

	// The original slice header must still see its own values.
	assert.Equal(t, "b", before[0].ID)
	assert.Equal(t, "a", before[1].ID)
}
