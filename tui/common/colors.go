package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// userPalette holds the fixed cyclic palette for chat usernames.
var userPalette = []lipgloss.Style{
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DC4E4")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6DA95")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F5A97F")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C6A0F6")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EBA0AC")),
	lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF")),
}

// ColorRing assigns each username a stable color class from the cyclic
// palette. Assignment is first come, append-only for the life of the
// process; a username never changes color once seen.
type ColorRing struct {
	byName map[string]int
	next   int
}

// NewColorRing creates an empty ring.
func NewColorRing() *ColorRing {
	return &ColorRing{byName: make(map[string]int)}
}

// ClassFor returns the color class for a username, claiming the next
// palette slot on first sight. Empty usernames get no class.
func (r *ColorRing) ClassFor(name string) string {
	if name == "" {
		return ""
	}
	idx, ok := r.byName[name]
	if !ok {
		idx = r.next % len(userPalette)
		r.byName[name] = idx
		r.next++
	}
	return fmt.Sprintf("user-color-%d", idx)
}

// StyleFor returns the lipgloss style for a username, claiming a slot
// like ClassFor.
func (r *ColorRing) StyleFor(name string) lipgloss.Style {
	if name == "" {
		return lipgloss.NewStyle()
	}
	r.ClassFor(name)
	return userPalette[r.byName[name]]
}

// Adopt seeds a username with a previously persisted color class so a
// cached identity keeps its color across reloads. Unknown class strings
// are ignored and the name claims a fresh slot on next use.
func (r *ColorRing) Adopt(name, class string) {
	if name == "" || class == "" {
		return
	}
	if _, ok := r.byName[name]; ok {
		return
	}
	raw, ok := strings.CutPrefix(class, "user-color-")
	if !ok {
		return
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= len(userPalette) {
		return
	}
	r.byName[name] = idx
	if idx >= r.next {
		r.next = idx + 1
	}
}
