// Package store persists the viewer's local preferences: the recent-search
// list and the dark-mode flag. Everything lives in one JSON file under
// ~/.octoview; last write wins, single-process usage assumed.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// MaxHistory is the maximum number of recent searches kept.
const MaxHistory = 5

// Prefs is the persisted preference set.
type Prefs struct {
	History  []string `json:"history"`
	DarkMode bool     `json:"dark_mode"`
}

// Store reads and writes Prefs at a fixed file path.
type Store struct {
	path string
}

// DefaultPath returns ~/.octoview/prefs.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".octoview", "prefs.json"), nil
}

// Open returns a store backed by the given path. The file need not exist yet.
func Open(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted preferences. A missing file yields zero Prefs and
// no error. A malformed file yields zero Prefs and a non-nil error so the
// caller can report it; startup must not be blocked either way.
func (s *Store) Load() (Prefs, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("store.Load: %w", err)
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("store.Load: parse %s: %w", s.path, err)
	}
	if len(p.History) > MaxHistory {
		p.History = p.History[:MaxHistory]
	}
	return p, nil
}

// Save overwrites the persisted preferences with exactly the given value.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}
	return nil
}

// Push inserts username at the front of history, promoting it if already
// present, and caps the result at MaxHistory entries.
func Push(history []string, username string) []string {
	out := make([]string, 0, len(history)+1)
	out = append(out, username)
	for _, h := range history {
		if h != username {
			out = append(out, h)
		}
	}
	if len(out) > MaxHistory {
		out = out[:MaxHistory]
	}
	return out
}

// Remove drops username from history. Removing an absent entry is a no-op.
func Remove(history []string, username string) []string {
	out := make([]string, 0, len(history))
	for _, h := range history {
		if h != username {
			out = append(out, h)
		}
	}
	return out
}
