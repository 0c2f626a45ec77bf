// Package store persists the client's small state blobs (post cache,
// liked set, chat identity) as JSON files. A missing or corrupt file
// always reads as "absent"; corruption is never surfaced to the user.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const (
	postCacheFile = "posts_cache.json"
	likedFile     = "liked_posts.json"
	identityFile  = "chat_identity.json"
	nameFile      = "guestbook_name.json"
)

// Store reads and writes state files under a single directory.
type Store struct {
	dir string
	log *zap.Logger
}

// New creates a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: dir, log: log}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON loads a blob into v. Returns false for missing or corrupt
// files; corrupt files are removed so the next read is a clean miss.
func (s *Store) readJSON(name string, v any) bool {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("corrupt state file discarded",
			zap.String("file", name), zap.Error(err))
		_ = os.Remove(s.path(name))
		return false
	}
	return true
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), data, 0o600)
}

func (s *Store) remove(name string) {
	_ = os.Remove(s.path(name))
}
