package main

import (
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		mode     cliMode
		deepLink int
		msg      string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "deep link", args: []string{"--post=7"}, mode: cliRun, deepLink: 7},
		{name: "deep link zero", args: []string{"--post=0"}, mode: cliInvalid, msg: "invalid post number: 0"},
		{name: "deep link negative", args: []string{"--post=-3"}, mode: cliInvalid, msg: "invalid post number: -3"},
		{name: "deep link garbage", args: []string{"--post=abc"}, mode: cliInvalid, msg: "invalid post number: abc"},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flags joined", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "too many args", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, deepLink, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if deepLink != tc.deepLink {
				t.Fatalf("deepLink mismatch: got %d want %d", deepLink, tc.deepLink)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "abcdef1234567890",
		"vcs.time":     "2025-06-01T00:00:00Z",
	})
	if v != "v1.2.3" {
		t.Fatalf("version = %q, want v1.2.3", v)
	}
	if c != "abcdef123456" {
		t.Fatalf("commit = %q, want the 12-char revision", c)
	}
	if d != "2025-06-01T00:00:00Z" {
		t.Fatalf("date = %q", d)
	}

	v, c, d = resolveVersionInfo("v2.0.0", "deadbeef", "2025-01-01", "v9.9.9", map[string]string{
		"vcs.revision": "ffff",
	})
	if v != "v2.0.0" || c != "deadbeef" || d != "2025-01-01" {
		t.Fatalf("explicit ldflags values should win: %q %q %q", v, c, d)
	}
}
