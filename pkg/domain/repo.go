package domain

import "time"

// Repository is a single repository owned by the queried user.
// Only the first page returned by the API is fetched; no pagination.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description,omitempty"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Homepage    string    `json:"homepage,omitempty"`
	Topics      []string  `json:"topics,omitempty"`
}
