package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// defaultGatewayURL is the published Apps Script endpoint backing the
// homepage sheet.
const defaultGatewayURL = "https://script.google.com/macros/s/AKfycbwbi1A3o8T4BMjSQ5D5QmCque20c1GO4znfJ1DS6QZ0VolgIbO7KPAPskxVlX0PFwJ3/exec"

// defaultSiteURL is the public page share links point at.
const defaultSiteURL = "https://hompy.dev"

// Config holds application-level configuration.
type Config struct {
	GatewayURL string // Apps Script endpoint
	SiteURL    string // Base URL used to build share deep links
	StateDir   string // Directory for cache/likes/identity state files
	LogPath    string // Log file path
}

// Load reads configuration from environment variables.
//
//	HOMPY_GATEWAY_URL   Apps Script endpoint (default: the published one)
//	HOMPY_SITE_URL      share link base (default: https://hompy.dev)
//	HOMPY_STATE_DIR     state directory (default: ~/.config/hompy)
//	HOMPY_LOG           log file (default: <state dir>/hompy.log)
func Load() (Config, error) {
	gateway := os.Getenv("HOMPY_GATEWAY_URL")
	if gateway == "" {
		gateway = defaultGatewayURL
	}
	parsed, err := url.Parse(gateway)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid HOMPY_GATEWAY_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid HOMPY_GATEWAY_URL: only https is allowed")
	}
	gateway = strings.TrimRight(parsed.String(), "/")

	site := os.Getenv("HOMPY_SITE_URL")
	if site == "" {
		site = defaultSiteURL
	}
	siteParsed, err := url.Parse(site)
	if err != nil || siteParsed.Scheme == "" || siteParsed.Host == "" {
		return Config{}, fmt.Errorf("invalid HOMPY_SITE_URL: must be an absolute URL")
	}
	site = strings.TrimRight(siteParsed.String(), "/")

	stateDir := os.Getenv("HOMPY_STATE_DIR")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		stateDir = filepath.Join(home, ".config", "hompy")
	}

	logPath := os.Getenv("HOMPY_LOG")
	if logPath == "" {
		logPath = filepath.Join(stateDir, "hompy.log")
	}

	return Config{
		GatewayURL: gateway,
		SiteURL:    site,
		StateDir:   stateDir,
		LogPath:    logPath,
	}, nil
}
