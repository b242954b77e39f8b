package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client fetches a user's public repositories from the GitHub REST API.
// The lookup is proxied read-only; responses are passed through untouched.
type Client struct {
	BaseURL string // defaults to https://api.github.com
	Token   string // optional; raises the unauthenticated rate limit
	HTTP    *http.Client
}

func NewClient(token string) *Client {
	return &Client{
		BaseURL: "https://api.github.com",
		Token:   token,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Repos returns the newest repositories of a user, paged by perPage and sorted
// by creation date. A non-200 upstream status is reported as ErrNoProfile.
func (c *Client) Repos(ctx context.Context, username string, perPage int) ([]map[string]any, error) {
	if perPage <= 0 {
		perPage = 5
	}
	base := c.BaseURL
	if base == "" {
		base = "https://api.github.com"
	}
	u := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc", base, url.PathEscape(username), perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNoProfile
	}
	var repos []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// ErrNoProfile is returned when GitHub has no repositories for the username.
var ErrNoProfile = fmt.Errorf("No Github profile found")
