package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calewis/octoview/pkg/domain"
)

// renderProfile renders the profile card for a fetched user.
func renderProfile(user *domain.User, th theme, width int) string {
	if user == nil {
		return ""
	}

	cardWidth := min(44, width-4)
	if cardWidth < 28 {
		cardWidth = 28
	}
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.border).
		Padding(1, 2).
		Width(cardWidth)

	var sb strings.Builder
	sb.WriteString(th.selected.Render("@"+user.Login) + "\n")
	if user.Name != "" {
		sb.WriteString(th.normal.Render(user.Name) + "\n")
	}
	if user.Bio != "" {
		sb.WriteString("\n" + th.dim.Render(user.Bio) + "\n")
	}
	if user.Location != "" {
		sb.WriteString(th.meta.Render("· "+user.Location) + "\n")
	}

	sb.WriteString("\n")
	stats := fmt.Sprintf("%d repos  %d followers  %d following",
		user.PublicRepos, user.Followers, user.Following)
	sb.WriteString(th.meta.Render(stats) + "\n")

	if user.HTMLURL != "" {
		sb.WriteString("\n" + th.link.Render(user.HTMLURL))
	}

	return border.Render(sb.String())
}
