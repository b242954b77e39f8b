package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/domain/entity"
	repo "github.com/devconnect/devconnect-api/internal/domain/repository"
	"github.com/devconnect/devconnect-api/pkg/github"
	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// ProfileService is the mutation engine for the Profile aggregate. Every
// embedded-collection operation follows the same shape: load the root by the
// caller's id, transform in memory, persist via full-replace save. Loading by
// owner id makes the ownership check implicit for this aggregate.
type ProfileService struct {
	Repo    repo.ProfileRepository
	Users   repo.UserRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
	Github  *github.Client
	Cache   *redis.Client
}

func NewProfileService(r repo.ProfileRepository, users repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, gh *github.Client, cache *redis.Client) *ProfileService {
	return &ProfileService{Repo: r, Users: users, Logger: logger, ES: es, ESIndex: esIndex, Github: gh, Cache: cache}
}

// ProfileInput carries the root-level fields of a profile upsert. Skills is
// the raw comma-separated string; it is split and trimmed here.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

// ExperienceInput carries the fields of an experience add/update.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput carries the fields of an education add/update.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// SplitSkills turns "a, b" into ["a","b"]: split on commas, trim whitespace,
// drop empty segments. Applying it twice yields the same result.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetMine returns the caller's own profile.
func (s *ProfileService) GetMine(userID string) (*entity.Profile, error) {
	p, err := s.Repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, err
	}
	return p, nil
}

// Upsert creates the caller's profile on first submission and merges root
// fields on subsequent ones. Embedded collections are never touched here.
func (s *ProfileService) Upsert(ctx context.Context, userID string, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Repo.GetByUser(userID)
	switch {
	case err == nil:
		applyRootFields(p, in)
		if err := s.Repo.Save(p); err != nil {
			return nil, err
		}
	case errors.Is(err, repo.ErrNotFound):
		p = entity.NewProfile(userID)
		applyRootFields(p, in)
		if err := s.Repo.Insert(p); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.indexProfile(ctx, p)
	return p, nil
}

// applyRootFields merges the submitted root fields into the aggregate.
// Optional fields only overwrite when provided; the social mapping is replaced
// wholesale, matching the historical upsert behavior.
func applyRootFields(p *entity.Profile, in ProfileInput) {
	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}
	p.Status = in.Status
	p.Skills = SplitSkills(in.Skills)
	p.Social = entity.SocialLinks{
		Youtube:   in.Youtube,
		Twitter:   in.Twitter,
		Facebook:  in.Facebook,
		Linkedin:  in.Linkedin,
		Instagram: in.Instagram,
	}
}

// GetAll returns every profile, newest first.
func (s *ProfileService) GetAll() ([]entity.Profile, error) {
	return s.Repo.GetAll()
}

// GetByUser returns the profile of an arbitrary user.
func (s *ProfileService) GetByUser(userID string) (*entity.Profile, error) {
	p, err := s.Repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NotFound("Profile")
		}
		return nil, err
	}
	return p, nil
}

// Delete removes the caller's profile and cascades to the owning user. The
// caller's posts stay in place; only their owner may delete those.
func (s *ProfileService) Delete(ctx context.Context, userID string) (*entity.Profile, *entity.User, error) {
	p, err := s.Repo.DeleteByUser(userID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, nil, err
	}
	u, err := s.Users.Delete(userID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, nil, err
	}
	s.deindexProfile(ctx, userID)
	if p != nil && p.GithubUsername != "" && s.Cache != nil {
		_ = helpers.RedisDel(ctx, s.Cache, githubCacheKey(p.GithubUsername))
	}
	return p, u, nil
}

// AddExperience inserts a new entry at the front of the experience sequence.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ExperienceInput) ([]entity.Experience, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	p.AddExperience(entity.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	})
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Experience, nil
}

// UpdateExperience replaces the entry with the given id. The entry moves to
// the tail of the sequence; persisted only when the transform succeeds.
func (s *ProfileService) UpdateExperience(ctx context.Context, userID, expID string, in ExperienceInput) ([]entity.Experience, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	ok := p.UpdateExperience(expID, entity.Experience{
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	})
	if !ok {
		return nil, EntryNotFound("Experience")
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Experience, nil
}

// RemoveExperience deletes the entry with the given id.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) ([]entity.Experience, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	if !p.RemoveExperience(expID) {
		return nil, EntryNotFound("Experience")
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Experience, nil
}

// AddEducation inserts a new entry at the front of the education sequence.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, in EducationInput) ([]entity.Education, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	p.AddEducation(entity.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	})
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Education, nil
}

// UpdateEducation replaces the entry with the given id (tail relocation, same
// contract as UpdateExperience).
func (s *ProfileService) UpdateEducation(ctx context.Context, userID, eduID string, in EducationInput) ([]entity.Education, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	ok := p.UpdateEducation(eduID, entity.Education{
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	})
	if !ok {
		return nil, EntryNotFound("Education")
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Education, nil
}

// RemoveEducation deletes the entry with the given id.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) ([]entity.Education, error) {
	p, err := s.loadOwn(userID)
	if err != nil {
		return nil, err
	}
	if !p.RemoveEducation(eduID) {
		return nil, EntryNotFound("Education")
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	s.indexProfile(ctx, p)
	return p.Education, nil
}

func (s *ProfileService) loadOwn(userID string) (*entity.Profile, error) {
	p, err := s.Repo.GetByUser(userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, NotFound("Profile")
		}
		return nil, err
	}
	return p, nil
}

// GithubRepos proxies the read-only repository listing for a username.
// Responses are cached in Redis so repeated profile views do not burn the
// upstream rate limit.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]map[string]any, error) {
	if s.Github == nil {
		return nil, errors.New("github lookup not configured")
	}
	key := githubCacheKey(username)
	if s.Cache != nil {
		var cached []map[string]any
		if ok, err := helpers.RedisGetJSON(ctx, s.Cache, key, &cached); err == nil && ok {
			return cached, nil
		}
	}
	repos, err := s.Github.Repos(ctx, username, 5)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if err := helpers.RedisSetJSON(ctx, s.Cache, key, repos, 10*time.Minute); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Warn("github cache write failed")
		}
	}
	return repos, nil
}

func githubCacheKey(username string) string { return "github:repos:" + username }

// Search queries the Elasticsearch profile index on status, skills, bio and
// location.
func (s *ProfileService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"status^2", "skills^2", "bio", "location", "company"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexProfile pushes the latest aggregate state to Elasticsearch. Indexing is
// best effort and never fails the request.
func (s *ProfileService) indexProfile(ctx context.Context, p *entity.Profile) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         p.ID,
		"user":       p.UserID,
		"status":     p.Status,
		"skills":     p.Skills,
		"bio":        p.Bio,
		"location":   p.Location,
		"company":    p.Company,
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("profile_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("profile_id", p.ID).Warn("es index response error")
	}
}

func (s *ProfileService) deindexProfile(ctx context.Context, userID string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	// The index document id is the profile id, but deletion happens after the
	// row is gone; delete-by-query on the owner id covers it.
	body := map[string]any{"query": map[string]any{"term": map[string]any{"user": userID}}}
	b, _ := json.Marshal(body)
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.DeleteByQuery([]string{s.ESIndex}, strings.NewReader(string(b)), s.ES.DeleteByQuery.WithContext(c))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("es deindex failed")
		}
		return
	}
	_ = res.Body.Close()
}
