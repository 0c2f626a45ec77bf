package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hompy/app"
	"hompy/infra/config"
	"hompy/infra/sheets"
	"hompy/infra/store"
	"hompy/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, int, string) {
	if len(args) == 0 {
		return cliRun, 0, ""
	}

	switch {
	case args[0] == "--version" || args[0] == "-version" || args[0] == "-v":
		return cliVersion, 0, ""
	case args[0] == "--help" || args[0] == "-h" || args[0] == "help":
		return cliHelp, 0, ""
	case strings.HasPrefix(args[0], "--post="):
		raw := strings.TrimPrefix(args[0], "--post=")
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cliInvalid, 0, fmt.Sprintf("invalid post number: %s", raw)
		}
		return cliRun, n, ""
	default:
		return cliInvalid, 0, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: hompy [--version|-version|-v] [--help|-h] [--post=N]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func newLogger(path string) *zap.Logger {
	// The TUI owns the terminal, so logs go to a file.
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return zap.NewNop()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	mode, deepLink, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("hompy %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(1)
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogPath)
	defer log.Sync()

	// 2. Build infrastructure.
	st := store.New(cfg.StateDir, log)
	client := sheets.NewClient(cfg.GatewayURL, log)

	// 3. Build services (concrete types satisfy app.* interfaces).
	postSvc := sheets.NewPostService(client)
	counterSvc := sheets.NewCounterService(client)
	guestbookSvc := sheets.NewGuestbookService(client)

	repo := app.NewRepository(postSvc, st.Posts(), log)
	likes := app.NewLikeLedger(st.Likes())

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Repo:      repo,
		Counter:   counterSvc,
		Guestbook: guestbookSvc,
		Likes:     likes,
		Identity:  st,
		Log:       log,
		SiteURL:   cfg.SiteURL,
		DeepLink:  deepLink,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hompy: %v\n", err)
		os.Exit(1)
	}
}
