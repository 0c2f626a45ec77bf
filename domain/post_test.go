package domain

import (
	"testing"
	"time"
)

func TestCacheEnvelope_FreshBoundary(t *testing.T) {
	now := time.Now()

	expired := CacheEnvelope{FetchedAt: now.Add(-CacheTTL - time.Millisecond).UnixMilli()}
	if expired.Fresh(now) {
		t.Fatalf("envelope older than TTL must be expired")
	}

	valid := CacheEnvelope{FetchedAt: now.Add(-4*time.Minute - 59*time.Second).UnixMilli()}
	if !valid.Fresh(now) {
		t.Fatalf("envelope within TTL must be valid")
	}

	zero := CacheEnvelope{}
	if zero.Fresh(now) {
		t.Fatalf("zero envelope must not be fresh")
	}
}

func TestPost_DisplayDate(t *testing.T) {
	p := Post{Date: "2025-06-27T05:23:37.000Z"}
	if got := p.DisplayDate(); got != "2025-06-27" {
		t.Fatalf("got %q", got)
	}

	raw := Post{Date: "sometime last week"}
	if got := raw.DisplayDate(); got != "sometime last week" {
		t.Fatalf("unparsable date should pass through, got %q", got)
	}

	if got := (Post{}).DisplayDate(); got != "" {
		t.Fatalf("empty date should stay empty, got %q", got)
	}
}

func TestViewerURL_Table(t *testing.T) {
	cases := []struct {
		typ  PostType
		id   string
		want string
	}{
		{TypeDocs, "d1", "https://docs.google.com/document/d/d1/preview"},
		{TypeSlide, "s1", "https://docs.google.com/presentation/d/s1/embed?start=false&loop=false&delayms=3000"},
		{TypeImage, "f1", "https://drive.google.com/file/d/f1/preview"},
		{TypePDF, "f2", "https://drive.google.com/file/d/f2/preview"},
		{TypeSpreadsheet, "sh1", "https://docs.google.com/spreadsheets/d/sh1/htmlembed"},
		{TypeHTML, "page.html", "/contents/html/page.html"},
		{TypeFolder, "fo1", "https://drive.google.com/embeddedfolderview?id=fo1#grid"},
		{PostType("DOCS"), "d2", "https://docs.google.com/document/d/d2/preview"},
		{PostType("mystery"), "x", ""},
	}
	for _, c := range cases {
		if got := ViewerURL(c.typ, c.id); got != c.want {
			t.Fatalf("ViewerURL(%q, %q) = %q, want %q", c.typ, c.id, got, c.want)
		}
	}
}
