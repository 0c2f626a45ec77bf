package store

import (
	"time"

	"hompy/domain"
)

// PostCache adapts the store to the post cache contract.
type PostCache struct {
	s *Store
}

// Posts returns the post cache view of the store.
func (s *Store) Posts() PostCache {
	return PostCache{s: s}
}

// Load returns the persisted post envelope. Freshness is the caller's
// concern; ok=false means missing or corrupt.
func (c PostCache) Load() (domain.CacheEnvelope, bool) {
	var env domain.CacheEnvelope
	if !c.s.readJSON(postCacheFile, &env) {
		return domain.CacheEnvelope{}, false
	}
	return env, true
}

// Save stores the post list stamped with the current time.
func (c PostCache) Save(posts []domain.Post) error {
	return c.s.writeJSON(postCacheFile, domain.CacheEnvelope{
		Posts:     posts,
		FetchedAt: time.Now().UnixMilli(),
	})
}

// Clear drops the stored envelope.
func (c PostCache) Clear() {
	c.s.remove(postCacheFile)
}
