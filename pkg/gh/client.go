package gh

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/calewis/octoview/pkg/domain"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// Profile is the result of a full profile fetch: the user plus the first
// page of their repositories.
type Profile struct {
	User  domain.User
	Repos []domain.Repository
}

// Client is a read-only GitHub API client. No authentication is sent; only
// public endpoints are used.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client against the given API base URL. An empty baseURL
// selects the public GitHub API.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProfile fetches the user and their repositories concurrently.
// Both requests must settle before it returns; if either fails the whole
// fetch fails, with the user request's error taking precedence so a bad
// username surfaces as a 404 rather than a repository error.
func (c *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	if username == "" {
		return nil, fmt.Errorf("gh.FetchProfile: empty username")
	}

	var (
		user     domain.User
		repos    []domain.Repository
		userErr  = make(chan error, 1)
		reposErr = make(chan error, 1)
	)
	go func() {
		userErr <- c.get(ctx, "/users/"+url.PathEscape(username), &user)
	}()
	go func() {
		reposErr <- c.get(ctx, "/users/"+url.PathEscape(username)+"/repos", &repos)
	}()

	uErr, rErr := <-userErr, <-reposErr
	if uErr != nil {
		return nil, fmt.Errorf("gh.FetchProfile: %w", uErr)
	}
	if rErr != nil {
		return nil, fmt.Errorf("gh.FetchProfile: %w", rErr)
	}
	return &Profile{User: user, Repos: repos}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "octoview")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
