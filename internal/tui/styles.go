package tui

import "github.com/charmbracelet/lipgloss"

// theme holds every style for one color mode. The app re-derives it when the
// dark flag flips, so views never branch on the flag themselves.
type theme struct {
	dark bool

	title    lipgloss.Style
	normal   lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	meta     lipgloss.Style
	accent   lipgloss.Style
	errText  lipgloss.Style
	star     lipgloss.Style
	link     lipgloss.Style

	chip    lipgloss.Style
	chipSel lipgloss.Style

	helpKey   lipgloss.Style
	helpLabel lipgloss.Style

	border        lipgloss.Color
	selectedRowBg lipgloss.Style
}

func newTheme(dark bool) theme {
	if dark {
		return theme{
			dark:     true,
			title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true),
			normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c4d0")),
			selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4ec")).Bold(true),
			dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")),
			meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("#505868")),
			accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#34d474")),
			errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#e06060")).Bold(true),
			star:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d4a844")),
			link:     lipgloss.NewStyle().Foreground(lipgloss.Color("#60a0e0")).Underline(true),

			chip:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")),
			chipSel: lipgloss.NewStyle().Foreground(lipgloss.Color("#e4e4ec")).Bold(true).Underline(true),

			helpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0")),
			helpLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#505868")),

			border:        lipgloss.Color("#1e1e2a"),
			selectedRowBg: lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a")),
		}
	}
	return theme{
		title:    lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")).Bold(true),
		normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#30343c")),
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("#101318")).Bold(true),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("#6a7280")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa2b0")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b43030")).Bold(true),
		star:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a07818")),
		link:     lipgloss.NewStyle().Foreground(lipgloss.Color("#2060b0")).Underline(true),

		chip:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6a7280")),
		chipSel: lipgloss.NewStyle().Foreground(lipgloss.Color("#101318")).Bold(true).Underline(true),

		helpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6a7280")),
		helpLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("#9aa2b0")),

		border:        lipgloss.Color("#d0d4dc"),
		selectedRowBg: lipgloss.NewStyle().Background(lipgloss.Color("#e6e8ee")),
	}
}

// langColors assigns a fixed color per common primary language, matching the
// dot colors GitHub itself uses where they read well in a terminal.
var langColors = map[string]lipgloss.Color{
	"Go":         lipgloss.Color("#00add8"),
	"Rust":       lipgloss.Color("#f0944a"),
	"Python":     lipgloss.Color("#3572a5"),
	"JavaScript": lipgloss.Color("#d4a844"),
	"TypeScript": lipgloss.Color("#3178c6"),
	"Ruby":       lipgloss.Color("#d05050"),
	"Java":       lipgloss.Color("#b07219"),
	"Kotlin":     lipgloss.Color("#a97bff"),
	"Swift":      lipgloss.Color("#f05138"),
	"C":          lipgloss.Color("#8890a0"),
	"C++":        lipgloss.Color("#f34b7d"),
	"C#":         lipgloss.Color("#178600"),
	"PHP":        lipgloss.Color("#4f5d95"),
	"Shell":      lipgloss.Color("#89e051"),
	"HTML":       lipgloss.Color("#e34c26"),
	"CSS":        lipgloss.Color("#563d7c"),
	"Elixir":     lipgloss.Color("#c084e0"),
	"Haskell":    lipgloss.Color("#5e5086"),
	"Lua":        lipgloss.Color("#000080"),
	"Zig":        lipgloss.Color("#ec915c"),
}

// cursorRow returns the style for the repository row under the cursor:
// the selected text style over the row-highlight background.
func (t theme) cursorRow() lipgloss.Style {
	return t.selectedRowBg.Inherit(t.selected)
}

// langStyle returns a style for a primary language name.
func (t theme) langStyle(lang string) lipgloss.Style {
	if c, ok := langColors[lang]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return t.dim
}

// helpEntry renders a single "key label" pair for the help bar.
func (t theme) helpEntry(key, label string) string {
	return t.helpKey.Render(key) + " " + t.helpLabel.Render(label)
}
