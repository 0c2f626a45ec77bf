package browse

import (
	"testing"

	"hompy/app"
)

func TestApplyLoadedPosts_PopulatesTagsAndFirstPage(t *testing.T) {
	posts := makePosts(23)
	posts[0].Tag = "art"
	m := loadedTestModel(posts, nil)

	if len(m.rendered) != PageSize {
		t.Fatalf("rendered = %d posts, want the first page of %d", len(m.rendered), PageSize)
	}
	if len(m.view) != 23 {
		t.Fatalf("view = %d posts, want all 23", len(m.view))
	}
	if len(m.tags) != 3 || m.tags[0] != "all" {
		t.Fatalf("tags = %v, want [all art dev]", m.tags)
	}
	if m.loading {
		t.Fatalf("loading should clear after a fresh response")
	}
}

func TestDeepLink_ActivatesRequestedRowIndex(t *testing.T) {
	repo := app.NewRepository(&stubGateway{}, nullCache{}, nil)
	likes := app.NewLikeLedger(&memLikeStore{})
	m := New(repo, &stubCounter{}, likes, nil, "https://hompy.dev", 2)

	posts := makePosts(3)
	m, _ = m.Update(PostsLoadedMsg{Posts: posts, QueryKey: m.currentQueryKey(), ReqSeq: m.reqSeq})

	if m.activeRow != 2 {
		t.Fatalf("activeRow = %d, want the deep-linked 2", m.activeRow)
	}
	if m.viewerURL == "" {
		t.Fatalf("deep link should open the viewer")
	}
	if p, ok := m.selectedPost(); !ok || p.RowIndex != 2 {
		t.Fatalf("cursor should sit on the deep-linked post")
	}
}

func TestDeepLink_BeyondFirstPageIsRevealed(t *testing.T) {
	repo := app.NewRepository(&stubGateway{}, nullCache{}, nil)
	likes := app.NewLikeLedger(&memLikeStore{})
	m := New(repo, &stubCounter{}, likes, nil, "https://hompy.dev", 1)

	// rowIndex 1 has the oldest date and sorts last, past page 0.
	posts := makePosts(23)
	m, _ = m.Update(PostsLoadedMsg{Posts: posts, QueryKey: m.currentQueryKey(), ReqSeq: m.reqSeq})

	if m.activeRow != 1 {
		t.Fatalf("activeRow = %d, want 1", m.activeRow)
	}
	if len(m.rendered) <= PageSize {
		t.Fatalf("rendered = %d posts, want pages extended to reach the target", len(m.rendered))
	}
}

func TestDeepLink_UnknownRowIndexLeavesViewerBlank(t *testing.T) {
	repo := app.NewRepository(&stubGateway{}, nullCache{}, nil)
	likes := app.NewLikeLedger(&memLikeStore{})
	m := New(repo, &stubCounter{}, likes, nil, "https://hompy.dev", 99)

	m, _ = m.Update(PostsLoadedMsg{Posts: makePosts(3), QueryKey: m.currentQueryKey(), ReqSeq: m.reqSeq})

	if m.activeRow != 0 {
		t.Fatalf("activeRow = %d, want blank viewer for an unknown rowIndex", m.activeRow)
	}
	if !m.deepLinkDone {
		t.Fatalf("deep link should only be attempted once")
	}
}

func TestLoadMore_AppendsAndStopsAtExhaustion(t *testing.T) {
	m := loadedTestModel(makePosts(13), nil)

	m, _ = m.loadMore()
	if len(m.rendered) != 13 {
		t.Fatalf("rendered = %d posts, want all 13", len(m.rendered))
	}
	if !m.pager.Exhausted() {
		t.Fatalf("pager should be exhausted")
	}

	m, _ = m.loadMore()
	if len(m.rendered) != 13 {
		t.Fatalf("load more past exhaustion should be a no-op")
	}
}

func TestLoadMore_IgnoredWhileLoading(t *testing.T) {
	m := loadedTestModel(makePosts(13), nil)
	m.loading = true

	m, _ = m.loadMore()
	if len(m.rendered) != PageSize {
		t.Fatalf("load more should be ignored during a page-0 load")
	}
}
