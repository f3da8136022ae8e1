package gh

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/calewis/octoview/pkg/domain"
)

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			json.NewEncoder(w).Encode(domain.User{ //nolint:errcheck
				Login:       "octocat",
				Name:        "The Octocat",
				PublicRepos: 2,
				Followers:   100,
			})
		case "/users/octocat/repos":
			json.NewEncoder(w).Encode([]domain.Repository{ //nolint:errcheck
				{ID: 1, Name: "hello-world", Stars: 42, Language: "Go"},
				{ID: 2, Name: "spoon-knife", Stars: 7},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.FetchProfile(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchProfile() error: %v", err)
	}
	if p.User.Login != "octocat" {
		t.Errorf("Login = %q, want %q", p.User.Login, "octocat")
	}
	if len(p.Repos) != 2 {
		t.Fatalf("got %d repos, want 2", len(p.Repos))
	}
	if p.Repos[0].Stars != 42 {
		t.Errorf("Repos[0].Stars = %d, want 42", p.Repos[0].Stars)
	}
}

func TestFetchProfile_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchProfile(context.Background(), "no-such-user")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(err) = false, want true (err = %v)", err)
	}
	if !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("error = %q, want it to contain 'HTTP 404'", err.Error())
	}
}

func TestFetchProfile_UserErrorWinsOverRepoError(t *testing.T) {
	// Both endpoints fail; the user request's status must surface.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/repos") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchProfile(context.Background(), "ghost")
	if !IsStatus(err, http.StatusNotFound) {
		t.Errorf("expected 404 to take precedence, got %v", err)
	}
}

func TestFetchProfile_RepoFailureFailsWholeFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/repos") {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode(domain.User{Login: "octocat"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.FetchProfile(context.Background(), "octocat")
	if !IsStatus(err, http.StatusForbidden) {
		t.Errorf("expected 403 from repos request, got %v", err)
	}
}

func TestFetchProfile_MissingTopicsDecodeToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/repos") {
			// Raw payload without a topics key, plus an unknown field.
			w.Write([]byte(`[{"id":1,"name":"bare","stargazers_count":0,"watchers":3}]`)) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(domain.User{Login: "octocat"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.FetchProfile(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchProfile() error: %v", err)
	}
	if len(p.Repos) != 1 {
		t.Fatalf("got %d repos, want 1", len(p.Repos))
	}
	if p.Repos[0].Topics != nil {
		t.Errorf("Topics = %v, want nil", p.Repos[0].Topics)
	}
}

func TestFetchProfile_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL)
	_, err := c.FetchProfile(context.Background(), "octocat")
	if err == nil {
		t.Fatal("expected transport error from closed server")
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Error("network failure must not look like a 404")
	}
}

func TestFetchProfile_EmptyUsername(t *testing.T) {
	c := New("http://unused.invalid")
	if _, err := c.FetchProfile(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty username")
	}
}
