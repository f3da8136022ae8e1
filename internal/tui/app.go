package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/calewis/octoview/internal/browser"
	"github.com/calewis/octoview/internal/store"
	"github.com/calewis/octoview/pkg/domain"
	"github.com/calewis/octoview/pkg/gh"
)

type appState int

const (
	stateIdle appState = iota
	stateLoading
	stateSuccess
	stateError
)

// fetchDoneMsg carries a settled profile fetch. The token ties it back to
// the search that issued it; a stale token means a newer search superseded
// this one and the result must be dropped.
type fetchDoneMsg struct {
	token   uuid.UUID
	profile *gh.Profile
	err     error
}

// searchRequestMsg asks the app to start a search, used for the optional
// username passed on the command line.
type searchRequestMsg struct {
	username string
}

// App is the root Bubbletea model. It owns all viewer state: the current
// search, fetched data, sort/filter selections, history and theme.
type App struct {
	client  *gh.Client
	store   *store.Store
	version string

	input textinput.Model
	spin  spinner.Model

	state    appState
	username string
	user     *domain.User
	repos    []domain.Repository
	errMsg   string

	history    []string
	histCursor int // -1 when no history chip is selected

	sortBy     string
	langFilter string
	dark       bool
	th         theme

	cursor     int
	expandedID int64 // 0 when no row is expanded

	fetchToken uuid.UUID

	statusMsg string

	latestVersion string
	hasUpdate     bool

	initialSearch string

	width  int
	height int
}

// NewApp creates the TUI application. prefs is the startup snapshot loaded
// by main; initial optionally names a username to search immediately.
func NewApp(c *gh.Client, st *store.Store, prefs store.Prefs, version, initial string) App {
	ti := textinput.New()
	ti.Placeholder = "github username"
	ti.CharLimit = 39 // GitHub's username length cap
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return App{
		client:        c,
		store:         st,
		version:       version,
		input:         ti,
		spin:          sp,
		history:       prefs.History,
		histCursor:    -1,
		dark:          prefs.DarkMode,
		th:            newTheme(prefs.DarkMode),
		sortBy:        domain.SortByStars,
		langFilter:    domain.FilterAll,
		initialSearch: initial,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, checkVersion(a.version)}
	if a.initialSearch != "" {
		username := a.initialSearch
		cmds = append(cmds, func() tea.Msg { return searchRequestMsg{username: username} })
	}
	return tea.Batch(cmds...)
}

func fetchCmd(c *gh.Client, username string, token uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		p, err := c.FetchProfile(context.Background(), username)
		return fetchDoneMsg{token: token, profile: p, err: err}
	}
}

// startSearch begins the loading cycle for a username. A fresh token makes
// this search the only one whose settlement will be applied, so overlapping
// searches resolve latest-wins regardless of response order.
func (a App) startSearch(username string) (App, tea.Cmd) {
	username = strings.TrimSpace(username)
	if username == "" {
		return a, nil
	}
	a.username = username
	a.state = stateLoading
	a.errMsg = ""
	a.histCursor = -1
	a.cursor = 0
	a.expandedID = 0
	a.fetchToken = uuid.New()
	a.input.SetValue(username)
	a.input.Blur()
	return a, tea.Batch(a.spin.Tick, fetchCmd(a.client, username, a.fetchToken))
}

// visibleRepos applies the derivation pipeline: sort, then filter.
func (a App) visibleRepos() []domain.Repository {
	return domain.FilterByLanguage(domain.SortRepos(a.repos, a.sortBy), a.langFilter)
}

// savePrefs persists history and theme. Fire-and-forget: persistence
// problems never interrupt the fetch flow.
func (a App) savePrefs() {
	if a.store == nil {
		return
	}
	a.store.Save(store.Prefs{History: a.history, DarkMode: a.dark}) //nolint:errcheck
}

// fetchErrorMessage converts a fetch failure into the single user-visible
// error string.
func fetchErrorMessage(err error) string {
	var httpErr *gh.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound {
			return fmt.Sprintf("User not found: %d", httpErr.StatusCode)
		}
		return fmt.Sprintf("Request failed: HTTP %d", httpErr.StatusCode)
	}
	return "Network error: " + err.Error()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = min(48, msg.Width-6)
		return a, nil

	case searchRequestMsg:
		return a.startSearch(msg.username)

	case fetchDoneMsg:
		if msg.token != a.fetchToken {
			return a, nil // superseded by a newer search
		}
		if msg.err != nil {
			a.state = stateError
			a.errMsg = fetchErrorMessage(msg.err)
			a.user = nil
			a.repos = nil
			return a, nil
		}
		a.state = stateSuccess
		a.user = &msg.profile.User
		a.repos = msg.profile.Repos
		a.history = store.Push(a.history, a.username)
		a.savePrefs()
		return a, nil

	case versionCheckMsg:
		a.latestVersion = msg.latestVersion
		a.hasUpdate = msg.hasUpdate
		return a, nil

	case spinner.TickMsg:
		if a.state != stateLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		a.statusMsg = ""
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.input.Focused() {
			return a.updateSearchInput(msg)
		}
		return a.updateBrowsing(msg)
	}

	// Everything else (cursor blink etc.) goes to the focused input.
	if a.input.Focused() {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.startSearch(a.input.Value())
	case "esc":
		a.input.Blur()
		return a, nil
	default:
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
}

func (a App) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "/":
		a.input.Focus()
		a.input.SetValue("")
		a.histCursor = -1
		return a, textinput.Blink

	case "t":
		a.dark = !a.dark
		a.th = newTheme(a.dark)
		a.savePrefs()

	case "s":
		a.sortBy = nextSort(a.sortBy)
		a.cursor = 0

	case "f":
		a.langFilter = nextLanguage(domain.DistinctLanguages(a.repos), a.langFilter)
		a.cursor = 0

	case "j", "down":
		if n := len(a.visibleRepos()); a.cursor < n-1 {
			a.cursor++
		}
		a.histCursor = -1

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		a.histCursor = -1

	case "h", "left":
		if len(a.history) == 0 {
			break
		}
		if a.histCursor < 0 {
			a.histCursor = 0
		} else if a.histCursor > 0 {
			a.histCursor--
		}

	case "l", "right":
		if len(a.history) == 0 {
			break
		}
		if a.histCursor < 0 {
			a.histCursor = 0
		} else if a.histCursor < len(a.history)-1 {
			a.histCursor++
		}

	case "x":
		if a.histCursor >= 0 && a.histCursor < len(a.history) {
			a.history = store.Remove(a.history, a.history[a.histCursor])
			if a.histCursor >= len(a.history) {
				a.histCursor = len(a.history) - 1
			}
			a.savePrefs()
		}

	case "enter":
		if a.histCursor >= 0 && a.histCursor < len(a.history) {
			return a.startSearch(a.history[a.histCursor])
		}
		if vis := a.visibleRepos(); a.cursor < len(vis) {
			id := vis[a.cursor].ID
			if a.expandedID == id {
				a.expandedID = 0
			} else {
				a.expandedID = id
			}
		}

	case "o":
		if vis := a.visibleRepos(); a.cursor < len(vis) {
			browser.Open(vis[a.cursor].HTMLURL) //nolint:errcheck // best-effort browser open
		}

	case "p":
		if a.user != nil {
			browser.Open(a.user.HTMLURL) //nolint:errcheck // best-effort browser open
		}

	case "c":
		if vis := a.visibleRepos(); a.cursor < len(vis) {
			if err := clipboard.WriteAll(vis[a.cursor].HTMLURL); err != nil {
				a.statusMsg = fmt.Sprintf("copy failed: %v", err)
			} else {
				a.statusMsg = "copied!"
			}
		}

	case "esc":
		a.histCursor = -1
	}
	return a, nil
}

func (a App) View() string {
	th := a.th

	// Header: title left, version/theme right.
	title := th.title.Render("octoview") + "  " + th.meta.Render("GitHub profile viewer")
	mode := "light"
	if a.dark {
		mode = "dark"
	}
	right := th.dim.Render(mode)
	if a.hasUpdate {
		right = th.accent.Render("update available "+a.latestVersion) + "  " + right
	}
	pad := a.width - lipgloss.Width(title) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	header := " " + title + strings.Repeat(" ", pad) + right

	search := " " + a.input.View()

	hist := a.renderHistory()

	var body string
	switch a.state {
	case stateLoading:
		body = " " + a.spin.View() + th.dim.Render("fetching "+a.username+"...")
	case stateError:
		body = " " + th.errText.Render("Error: "+a.errMsg)
	case stateSuccess:
		body = a.renderResult()
	default:
		body = " " + th.dim.Render("enter a username to look up a profile")
	}

	help := a.renderHelp()
	status := ""
	if a.statusMsg != "" {
		status = " " + th.accent.Render(a.statusMsg)
	}

	// Chrome: header(1) + search(1) + history(1) + status(1) + help(1)
	out := header + "\n" + search + "\n" + hist + "\n" + body + "\n" + status + "\n" + help
	if a.height > 0 {
		out = strings.TrimRight(truncateToHeight(out, a.height), "\n")
	}
	return out
}

// renderHistory renders the recent-search chips, most recent first.
func (a App) renderHistory() string {
	if len(a.history) == 0 {
		return ""
	}
	th := a.th
	parts := make([]string, len(a.history))
	for i, h := range a.history {
		if i == a.histCursor {
			parts[i] = th.chipSel.Render(h)
		} else {
			parts[i] = th.chip.Render(h)
		}
	}
	return " " + th.meta.Render("recent: ") + strings.Join(parts, th.meta.Render("  "))
}

// renderResult renders the profile card and repository list, side by side
// when the terminal is wide enough.
func (a App) renderResult() string {
	th := a.th
	vis := a.visibleRepos()

	listWidth := a.width
	if a.width >= 100 {
		listWidth = a.width - 50
	}
	list := " " + renderRepoHeader(len(vis), a.sortBy, a.langFilter, th) + "\n\n" +
		renderRepoList(vis, a.cursor, a.expandedID, th, listWidth)

	card := renderProfile(a.user, th, min(a.width, 50))
	if a.width >= 100 {
		return lipgloss.JoinHorizontal(lipgloss.Top, card, list)
	}
	return card + "\n" + list
}

func (a App) renderHelp() string {
	th := a.th
	if a.input.Focused() {
		return " " + th.helpEntry("enter", "search") + "  " + th.helpEntry("esc", "browse") + "  " + th.helpEntry("ctrl+c", "quit")
	}
	entries := []string{
		th.helpEntry("/", "search"),
		th.helpEntry("j/k", "nav"),
		th.helpEntry("enter", "expand"),
		th.helpEntry("s", "sort"),
		th.helpEntry("f", "lang"),
		th.helpEntry("h/l", "history"),
		th.helpEntry("x", "forget"),
		th.helpEntry("o", "open"),
		th.helpEntry("p", "profile"),
		th.helpEntry("c", "copy"),
		th.helpEntry("t", "theme"),
		th.helpEntry("q", "quit"),
	}
	return " " + strings.Join(entries, "  ")
}
