package entity

import "time"

// Profile is an aggregate root: one per user, owning the experience and
// education collections as part of its single persisted value. Embedded
// entries are never addressable outside their parent document.
type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// SocialLinks is the fixed set of supported platform URLs.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is an embedded entry on Profile. ID is generated at insert time
// and is unique within the parent's collection.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education is an embedded entry on Profile.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// NewProfile builds an empty profile for a user. Collections start as empty
// (not nil) slices so they serialize as [] on the wire.
func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:     userID,
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
	}
}

// AddExperience inserts the entry at the front of the sequence: index 0 is
// always the newest entry.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = append([]Experience{e}, p.Experience...)
}

// UpdateExperience replaces the entry with the given id, relocating it to the
// tail of the sequence. The relocation mirrors the behavior consumers already
// depend on; do not "fix" it to front insertion. Returns false when no entry
// matches.
func (p *Profile) UpdateExperience(id string, e Experience) bool {
	rest, found := filterExperience(p.Experience, id)
	if !found {
		return false
	}
	e.ID = id
	p.Experience = append(rest, e)
	return true
}

// RemoveExperience deletes the entry with the given id, preserving the order
// of the remaining entries. Returns false when no entry matches.
func (p *Profile) RemoveExperience(id string) bool {
	rest, found := filterExperience(p.Experience, id)
	if !found {
		return false
	}
	p.Experience = rest
	return true
}

// AddEducation inserts the entry at the front of the sequence.
func (p *Profile) AddEducation(e Education) {
	p.Education = append([]Education{e}, p.Education...)
}

// UpdateEducation replaces the entry with the given id, relocating it to the
// tail of the sequence (same contract as UpdateExperience).
func (p *Profile) UpdateEducation(id string, e Education) bool {
	rest, found := filterEducation(p.Education, id)
	if !found {
		return false
	}
	e.ID = id
	p.Education = append(rest, e)
	return true
}

// RemoveEducation deletes the entry with the given id.
func (p *Profile) RemoveEducation(id string) bool {
	rest, found := filterEducation(p.Education, id)
	if !found {
		return false
	}
	p.Education = rest
	return true
}

// filterExperience returns a new slice without the entry matching id. The
// input slice is never mutated.
func filterExperience(in []Experience, id string) ([]Experience, bool) {
	out := make([]Experience, 0, len(in))
	found := false
	for _, e := range in {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}

func filterEducation(in []Education, id string) ([]Education, bool) {
	out := make([]Education, 0, len(in))
	found := false
	for _, e := range in {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
