package domain

import (
	"testing"
	"time"
)

func mkPost(row int, title, note, tag, date string, pin bool) Post {
	return Post{RowIndex: row, Title: title, Note: note, Tag: tag, Date: date, Pin: pin}
}

func TestFeedView_PinnedFirstThenDateDescending(t *testing.T) {
	posts := []Post{
		mkPost(1, "old", "", "", "2023-01-01T00:00:00Z", false),
		mkPost(2, "newest", "", "", "2025-06-01T00:00:00Z", false),
		mkPost(3, "pinned old", "", "", "2022-01-01T00:00:00Z", true),
		mkPost(4, "pinned new", "", "", "2024-01-01T00:00:00Z", true),
		mkPost(5, "mid", "", "", "2024-06-01T00:00:00Z", false),
	}

	view := FeedView(posts, "all", "")
	if len(view) != 5 {
		t.Fatalf("expected full view, got %d", len(view))
	}

	lastPin := true
	var lastDate time.Time
	for i, p := range view {
		if p.Pin && !lastPin {
			t.Fatalf("pinned post %d appears after unpinned", p.RowIndex)
		}
		if i > 0 && p.Pin == lastPin && p.ParsedDate().After(lastDate) {
			t.Fatalf("dates not descending at %d", p.RowIndex)
		}
		lastPin = p.Pin
		lastDate = p.ParsedDate()
	}
	if view[0].RowIndex != 4 || view[1].RowIndex != 3 {
		t.Fatalf("pinned ordering wrong: %d, %d", view[0].RowIndex, view[1].RowIndex)
	}
}

func TestFeedView_UnparsableDateSortsOldest(t *testing.T) {
	posts := []Post{
		mkPost(1, "broken", "", "", "not-a-date", false),
		mkPost(2, "real", "", "", "2020-01-01T00:00:00Z", false),
	}
	view := FeedView(posts, "", "")
	if view[len(view)-1].RowIndex != 1 {
		t.Fatalf("unparsable date should sort last, got %+v", view)
	}
}

func TestFeedView_TagFilterCaseInsensitiveExact(t *testing.T) {
	posts := []Post{
		mkPost(1, "a", "", "Dev", "2024-01-01T00:00:00Z", false),
		mkPost(2, "b", "", "devops", "2024-01-02T00:00:00Z", false),
		mkPost(3, "c", "", "", "2024-01-03T00:00:00Z", false),
	}

	view := FeedView(posts, "dev", "")
	if len(view) != 1 || view[0].RowIndex != 1 {
		t.Fatalf("tag filter should match exactly, got %+v", view)
	}

	for _, tag := range []string{"", "all", "ALL"} {
		if got := FeedView(posts, tag, ""); len(got) != 3 {
			t.Fatalf("tag %q should match everything, got %d", tag, len(got))
		}
	}
}

func TestFeedView_QueryMatchesAnyField(t *testing.T) {
	posts := []Post{
		mkPost(1, "Go generics", "", "", "2024-01-01T00:00:00Z", false),
		mkPost(2, "misc", "notes on GENERICS", "", "2024-01-02T00:00:00Z", false),
		mkPost(3, "misc", "", "generics-tag", "2024-01-03T00:00:00Z", false),
		mkPost(4, "unrelated", "", "", "2024-01-04T00:00:00Z", false),
	}
	view := FeedView(posts, "all", "generics")
	if len(view) != 3 {
		t.Fatalf("expected 3 matches across title/note/tag, got %d", len(view))
	}
}

func TestFeedView_FilterComposition(t *testing.T) {
	posts := []Post{
		mkPost(1, "go tips", "", "dev", "2024-01-01T00:00:00Z", false),
		mkPost(2, "go tips", "", "life", "2024-01-02T00:00:00Z", false),
		mkPost(3, "cooking", "", "dev", "2024-01-03T00:00:00Z", false),
	}

	// Tag pass then query pass must equal one conjunctive pass.
	sequential := FeedView(FeedView(posts, "dev", ""), "all", "go")
	combined := FeedView(posts, "dev", "go")

	if len(sequential) != len(combined) {
		t.Fatalf("composition mismatch: %d vs %d", len(sequential), len(combined))
	}
	for i := range combined {
		if sequential[i].RowIndex != combined[i].RowIndex {
			t.Fatalf("composition order mismatch at %d", i)
		}
	}
}

func TestFeedView_DoesNotMutateInput(t *testing.T) {
	posts := []Post{
		mkPost(1, "b", "", "", "2023-01-01T00:00:00Z", false),
		mkPost(2, "a", "", "", "2025-01-01T00:00:00Z", false),
	}
	_ = FeedView(posts, "all", "")
	if posts[0].RowIndex != 1 || posts[1].RowIndex != 2 {
		t.Fatalf("input slice was reordered: %+v", posts)
	}
}

func TestTags_DistinctSorted(t *testing.T) {
	posts := []Post{
		mkPost(1, "", "", "zeta", "", false),
		mkPost(2, "", "", "alpha", "", false),
		mkPost(3, "", "", "zeta", "", false),
		mkPost(4, "", "", "", "", false),
	}
	got := Tags(posts)
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Fatalf("unexpected tags: %v", got)
	}
}
