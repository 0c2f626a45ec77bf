package domain

import (
	"sort"
	"strings"
)

// FeedView produces the ordered view of posts for the given tag filter
// and search query. It is a pure function: the input slice is never
// mutated and the result is a fresh slice.
//
// Tag filtering is a case-insensitive exact match, skipped when the tag
// is empty or "all". The query is a case-insensitive substring match
// against title, note or tag; a post matches when any field contains it.
// Pinned posts come first, then date descending within each pin class.
func FeedView(posts []Post, tag, query string) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if !matchesTag(p, tag) {
			continue
		}
		if !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pin != out[j].Pin {
			return out[i].Pin
		}
		return out[i].ParsedDate().After(out[j].ParsedDate())
	})

	return out
}

// Tags returns the distinct non-empty tags of the post list, sorted.
// Used to populate the tag selector.
func Tags(posts []Post) []string {
	seen := make(map[string]struct{}, len(posts))
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Tag == "" {
			continue
		}
		if _, ok := seen[p.Tag]; ok {
			continue
		}
		seen[p.Tag] = struct{}{}
		out = append(out, p.Tag)
	}
	sort.Strings(out)
	return out
}

func matchesTag(p Post, tag string) bool {
	if tag == "" || strings.EqualFold(tag, "all") {
		return true
	}
	return p.Tag != "" && strings.EqualFold(p.Tag, tag)
}

func matchesQuery(p Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Note), q) ||
		strings.Contains(strings.ToLower(p.Tag), q)
}
