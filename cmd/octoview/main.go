package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calewis/octoview/internal/browser"
	"github.com/calewis/octoview/internal/store"
	"github.com/calewis/octoview/internal/tui"
	"github.com/calewis/octoview/pkg/gh"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	apiURL := os.Getenv("OCTOVIEW_API_URL")

	initial := ""
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("octoview " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "update":
			return runUpdateCheck()
		default:
			initial = os.Args[1]
		}
	}

	path, err := store.DefaultPath()
	if err != nil {
		return err
	}
	st := store.Open(path)
	prefs, err := st.Load()
	if err != nil {
		// Corrupt prefs degrade to defaults; never block startup.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	app := tui.NewApp(gh.New(apiURL), st, prefs, version, initial)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Print(`octoview — GitHub profile viewer for the terminal

Usage:
  octoview [username]   look up a profile (or start with an empty search)
  octoview update       check whether a newer release exists
  octoview --version    show version

Keys inside the viewer:
  /        focus the search box        s  cycle sort (stars/name/recent)
  j/k      move through repositories   f  cycle language filter
  enter    expand repo / run search    t  toggle light/dark theme
  h/l, x   select / forget history     o  open repo   p  open profile
  c        copy repo URL

Environment:
  OCTOVIEW_API_URL   override the GitHub API base URL
`)
}

type ghRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// runUpdateCheck compares the running version against the latest GitHub
// release and opens the release page if a newer one exists.
func runUpdateCheck() error {
	if version == "dev" {
		fmt.Println("dev build — install a release to enable update checks")
		return nil
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	resp, err := httpClient.Get("https://api.github.com/repos/calewis/octoview/releases/latest")
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned %s", resp.Status)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return fmt.Errorf("parse release: %w", err)
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	current := strings.TrimPrefix(version, "v")
	if !isNewerVersion(latest, current) {
		fmt.Printf("octoview v%s is up to date\n", current)
		return nil
	}

	fmt.Printf("octoview v%s available (running v%s)\n", latest, current)
	if release.HTMLURL != "" {
		if err := browser.Open(release.HTMLURL); err != nil {
			fmt.Println(release.HTMLURL)
		}
	}
	return nil
}

// isNewerVersion returns true if latest is a newer semver than current.
func isNewerVersion(latest, current string) bool {
	parse := func(v string) (int, int, int) {
		v = strings.TrimPrefix(v, "v")
		parts := strings.SplitN(v, ".", 3)
		atoi := func(s string) int {
			n, _ := strconv.Atoi(s) //nolint:errcheck // zero-value on parse failure is desired
			return n
		}
		var maj, min, patch int
		if len(parts) > 0 {
			maj = atoi(parts[0])
		}
		if len(parts) > 1 {
			min = atoi(parts[1])
		}
		if len(parts) > 2 {
			patch = atoi(parts[2])
		}
		return maj, min, patch
	}
	lMaj, lMin, lPatch := parse(latest)
	cMaj, cMin, cPatch := parse(current)
	if lMaj != cMaj {
		return lMaj > cMaj
	}
	if lMin != cMin {
		return lMin > cMin
	}
	return lPatch > cPatch
}
