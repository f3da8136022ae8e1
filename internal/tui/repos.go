package tui

import (
	"fmt"
	"strings"

	"github.com/calewis/octoview/pkg/domain"
)

// sortLabels maps sort options to the label shown in the list header.
var sortLabels = map[string]string{
	domain.SortByStars:   "most stars",
	domain.SortByName:    "name",
	domain.SortByUpdated: "most recent",
}

// nextSort cycles stars -> name -> updated -> stars.
func nextSort(current string) string {
	switch current {
	case domain.SortByStars:
		return domain.SortByName
	case domain.SortByName:
		return domain.SortByUpdated
	default:
		return domain.SortByStars
	}
}

// nextLanguage cycles the filter through "all" and each observed language.
// An unknown current value (a filter left over from a previous user whose
// language set differed) restarts the cycle at "all".
func nextLanguage(langs []string, current string) string {
	if current == domain.FilterAll {
		if len(langs) == 0 {
			return domain.FilterAll
		}
		return langs[0]
	}
	for i, l := range langs {
		if l == current {
			if i+1 < len(langs) {
				return langs[i+1]
			}
			return domain.FilterAll
		}
	}
	return domain.FilterAll
}

// renderRepoHeader renders the count + sort/filter summary line.
func renderRepoHeader(count int, sortBy, langFilter string, th theme) string {
	label := sortLabels[sortBy]
	if label == "" {
		label = sortLabels[domain.SortByStars]
	}
	header := th.selected.Render(fmt.Sprintf("Repositories (%d)", count))
	header += th.meta.Render("  sort: ") + th.accent.Render(label)
	header += th.meta.Render("  lang: ")
	if langFilter == domain.FilterAll {
		header += th.accent.Render("all")
	} else {
		header += th.langStyle(langFilter).Render(langFilter)
	}
	return header
}

// renderRepoList renders the repository rows. The row at cursor is
// highlighted; the repo matching expandedID shows its detail block.
func renderRepoList(repos []domain.Repository, cursor int, expandedID int64, th theme, width int) string {
	if len(repos) == 0 {
		return " " + th.dim.Render("No repositories found.")
	}

	nameWidth := width / 3
	if nameWidth < 16 {
		nameWidth = 16
	}

	var sb strings.Builder
	for i, r := range repos {
		prefix := "  "
		nameStyle := th.normal
		if i == cursor {
			prefix = th.accent.Render("> ")
			nameStyle = th.cursorRow()
		}

		row := prefix + nameStyle.Render(truncStr(r.Name, nameWidth))
		row += "  " + th.star.Render(fmt.Sprintf("★ %d", r.Stars))
		row += "  " + th.dim.Render(fmt.Sprintf("⑂ %d", r.Forks))
		if r.Language != "" {
			row += "  " + th.langStyle(r.Language).Render(r.Language)
		}
		if !r.UpdatedAt.IsZero() {
			row += "  " + th.meta.Render(formatTime(r.UpdatedAt))
		}
		sb.WriteString(row + "\n")

		if r.ID == expandedID {
			sb.WriteString(renderRepoDetail(r, th, width))
		}
	}
	return sb.String()
}

// renderRepoDetail renders the expanded block under a repository row.
func renderRepoDetail(r domain.Repository, th theme, width int) string {
	indent := "      "
	var sb strings.Builder
	if r.Description != "" {
		sb.WriteString(indent + th.dim.Render(truncStr(r.Description, width-10)) + "\n")
	}
	if len(r.Topics) > 0 {
		topics := make([]string, len(r.Topics))
		for i, t := range r.Topics {
			topics[i] = th.accent.Render("#" + t)
		}
		sb.WriteString(indent + strings.Join(topics, " ") + "\n")
	}
	if !r.CreatedAt.IsZero() {
		sb.WriteString(indent + th.meta.Render("created "+r.CreatedAt.Format("Jan 2, 2006")) + "\n")
	}
	if r.Homepage != "" {
		sb.WriteString(indent + th.link.Render(r.Homepage) + "\n")
	}
	sb.WriteString(indent + th.link.Render(r.HTMLURL) + "\n")
	return sb.String()
}
