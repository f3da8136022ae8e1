package domain

import (
	"sort"
	"strings"
)

// Sort options for repository lists.
const (
	SortByStars   = "stars"
	SortByName    = "name"
	SortByUpdated = "updated"
)

// FilterAll disables language filtering.
const FilterAll = "all"

// SortRepos returns a new slice ordered by the given sort option.
// Star and recency sorts are descending; name sort is ascending and
// case-insensitive. All sorts are stable, so ties keep their input order.
// Unknown options fall back to SortByStars.
func SortRepos(repos []Repository, option string) []Repository {
	out := make([]Repository, len(repos))
	copy(out, repos)
	switch option {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case SortByUpdated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stars > out[j].Stars
		})
	}
	return out
}

// FilterByLanguage keeps only repositories whose primary language equals
// filter exactly (case-sensitive). FilterAll is the identity. Repositories
// without a language never match a non-FilterAll filter.
func FilterByLanguage(repos []Repository, filter string) []Repository {
	if filter == FilterAll {
		return repos
	}
	out := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.Language != "" && r.Language == filter {
			out = append(out, r)
		}
	}
	return out
}

// DistinctLanguages returns the deduplicated primary languages across repos,
// in first-seen order.
func DistinctLanguages(repos []Repository) []string {
	seen := make(map[string]bool, len(repos))
	var langs []string
	for _, r := range repos {
		if r.Language == "" || seen[r.Language] {
			continue
		}
		seen[r.Language] = true
		langs = append(langs, r.Language)
	}
	return langs
}
