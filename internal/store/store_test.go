package store

import (
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "prefs.json"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := tempStore(t)
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.History) != 0 || p.DarkMode {
		t.Errorf("Load() = %+v, want zero Prefs", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)
	in := Prefs{History: []string{"octocat", "torvalds"}, DarkMode: true}
	if err := s.Save(in); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !out.DarkMode {
		t.Error("DarkMode = false, want true")
	}
	if len(out.History) != 2 || out.History[0] != "octocat" || out.History[1] != "torvalds" {
		t.Errorf("History = %v, want [octocat torvalds]", out.History)
	}
}

func TestLoadCorruptFileFailsSoft(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	p, err := Open(path).Load()
	if err == nil {
		t.Error("expected parse error for corrupt file")
	}
	if len(p.History) != 0 || p.DarkMode {
		t.Errorf("Load() = %+v, want zero Prefs on parse failure", p)
	}
}

func TestLoadCapsOversizedHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	data := []byte(`{"history":["a","b","c","d","e","f","g"]}`)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	p, err := Open(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.History) != MaxHistory {
		t.Errorf("len(History) = %d, want %d", len(p.History), MaxHistory)
	}
}

func TestPushCapsAtMaxHistory(t *testing.T) {
	var history []string
	searches := []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"}
	for _, u := range searches {
		history = Push(history, u)
	}

	if len(history) != MaxHistory {
		t.Fatalf("len = %d, want %d", len(history), MaxHistory)
	}
	// Most recent first: last 5 unique searches in reverse order.
	want := []string{"u7", "u6", "u5", "u4", "u3"}
	for i := range want {
		if history[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, history[i], want[i])
		}
	}
}

func TestPushPromotesExistingEntry(t *testing.T) {
	history := []string{"a", "b", "c"}
	got := Push(history, "b")

	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRemove(t *testing.T) {
	history := []string{"a", "b", "c"}

	got := Remove(history, "b")
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Remove(b) = %v, want [a c]", got)
	}

	// Removing an absent entry is a no-op.
	got = Remove(history, "zzz")
	if len(got) != 3 {
		t.Errorf("Remove(zzz) changed length: %v", got)
	}
}
