package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOMPY_GATEWAY_URL", "https://script.example.com/exec/")
	t.Setenv("HOMPY_SITE_URL", "https://me.example.com")
	t.Setenv("HOMPY_STATE_DIR", dir)
	t.Setenv("HOMPY_LOG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GatewayURL != "https://script.example.com/exec" {
		t.Fatalf("gateway must be normalized: %q", cfg.GatewayURL)
	}
	if cfg.SiteURL != "https://me.example.com" {
		t.Fatalf("unexpected site url: %q", cfg.SiteURL)
	}
	if cfg.LogPath != filepath.Join(dir, "hompy.log") {
		t.Fatalf("log path should default into state dir: %q", cfg.LogPath)
	}
}

func TestLoad_RejectsNonHTTPSGateway(t *testing.T) {
	t.Setenv("HOMPY_GATEWAY_URL", "http://insecure.local/exec")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-https gateway")
	}
}

func TestLoad_RejectsRelativeSiteURL(t *testing.T) {
	t.Setenv("HOMPY_GATEWAY_URL", "https://script.example.com/exec")
	t.Setenv("HOMPY_SITE_URL", "/just/a/path")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for relative site url")
	}
}
