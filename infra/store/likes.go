package store

// LikeSet adapts the store to the liked-post persistence contract.
type LikeSet struct {
	s *Store
}

// Likes returns the liked-set view of the store.
func (s *Store) Likes() LikeSet {
	return LikeSet{s: s}
}

// Load returns the persisted liked rowIndex values; a missing or
// corrupt file reads as the empty set.
func (l LikeSet) Load() []int {
	var rows []int
	if !l.s.readJSON(likedFile, &rows) {
		return nil
	}
	return rows
}

// Save replaces the persisted liked set.
func (l LikeSet) Save(rows []int) error {
	if rows == nil {
		rows = []int{}
	}
	return l.s.writeJSON(likedFile, rows)
}
