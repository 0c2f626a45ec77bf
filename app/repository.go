package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hompy/domain"
)

// Repository owns the authoritative in-memory post list for the
// session. The list is session-sticky: once loaded it is returned
// unchanged until Reset. Resolution order is memory, then a fresh
// cache envelope, then the network.
type Repository struct {
	gateway PostService
	cache   PostCache
	log     *zap.Logger
	posts   []domain.Post
	now     func() time.Time
}

// NewRepository creates a repository over the given gateway and cache.
func NewRepository(gateway PostService, cache PostCache, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{
		gateway: gateway,
		cache:   cache,
		log:     log,
		now:     time.Now,
	}
}

// EnsureLoaded returns the session's post list, loading it on first
// call. A network failure returns an error with no posts; the caller
// surfaces it as the list's error state.
func (r *Repository) EnsureLoaded(ctx context.Context) ([]domain.Post, error) {
	if len(r.posts) > 0 {
		return r.posts, nil
	}

	if env, ok := r.cache.Load(); ok {
		if env.Fresh(r.now()) {
			r.log.Debug("posts loaded from cache", zap.Int("count", len(env.Posts)))
			r.posts = env.Posts
			return r.posts, nil
		}
		r.cache.Clear()
	}

	posts, err := r.gateway.FetchAll(ctx)
	if err != nil {
		r.log.Warn("post fetch failed", zap.Error(err))
		return nil, fmt.Errorf("loading posts: %w", err)
	}

	r.posts = posts
	if err := r.cache.Save(posts); err != nil {
		// A stale cache only costs a refetch next run.
		r.log.Warn("post cache write failed", zap.Error(err))
	}
	return r.posts, nil
}

// Posts returns the current in-memory list without triggering a load.
func (r *Repository) Posts() []domain.Post {
	return r.posts
}

// Reset drops the in-memory list so the next EnsureLoaded resolves
// again.
func (r *Repository) Reset() {
	r.posts = nil
}
