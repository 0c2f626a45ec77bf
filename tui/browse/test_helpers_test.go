package browse

import (
	"context"
	"fmt"

	"hompy/app"
	"hompy/domain"
)

type stubGateway struct {
	posts []domain.Post
	err   error
}

func (s *stubGateway) FetchAll(context.Context) ([]domain.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.posts, nil
}

type nullCache struct{}

func (nullCache) Load() (domain.CacheEnvelope, bool) { return domain.CacheEnvelope{}, false }
func (nullCache) Save([]domain.Post) error           { return nil }
func (nullCache) Clear()                             {}

type memLikeStore struct {
	rows []int
}

func (s *memLikeStore) Load() []int       { return s.rows }
func (s *memLikeStore) Save(r []int) error { s.rows = r; return nil }

type stubCounter struct {
	likeCount  int
	likeErr    error
	shareCount int
	shareErr   error

	likeCalls  []app.LikeAction
	shareCalls int
}

func (s *stubCounter) UpdateLike(_ context.Context, _ int, action app.LikeAction) (int, error) {
	s.likeCalls = append(s.likeCalls, action)
	if s.likeErr != nil {
		return 0, s.likeErr
	}
	return s.likeCount, nil
}

func (s *stubCounter) UpdateShare(context.Context, int) (int, error) {
	s.shareCalls++
	if s.shareErr != nil {
		return 0, s.shareErr
	}
	return s.shareCount, nil
}

func makePost(rowIndex int, title, tag, date string) domain.Post {
	return domain.Post{
		RowIndex: rowIndex,
		Title:    title,
		Note:     "note for " + title,
		Tag:      tag,
		Date:     date,
		Type:     domain.TypeDocs,
		ID:       fmt.Sprintf("doc-%d", rowIndex),
	}
}

func makePosts(n int) []domain.Post {
	posts := make([]domain.Post, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, makePost(i, fmt.Sprintf("post %d", i), "dev",
			fmt.Sprintf("2025-01-%02d", (i%28)+1)))
	}
	return posts
}

func newTestModel(posts []domain.Post, counter *stubCounter) Model {
	repo := app.NewRepository(&stubGateway{posts: posts}, nullCache{}, nil)
	likes := app.NewLikeLedger(&memLikeStore{})
	if counter == nil {
		counter = &stubCounter{}
	}
	return New(repo, counter, likes, nil, "https://hompy.dev", 0)
}

// loadedTestModel returns a model with the given posts already applied,
// as if the initial load had settled.
func loadedTestModel(posts []domain.Post, counter *stubCounter) Model {
	m := newTestModel(posts, counter)
	m, _ = m.Update(PostsLoadedMsg{
		Posts:    posts,
		QueryKey: m.currentQueryKey(),
		ReqSeq:   m.reqSeq,
	})
	return m
}
