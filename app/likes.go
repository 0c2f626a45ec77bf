package app

import "sort"

// LikeLedger tracks which posts this user has liked. Membership is
// local-only and independent of the remote like count; every flip is
// persisted immediately so a reload keeps the liked state.
type LikeLedger struct {
	store LikeStore
	liked map[int]bool
}

// NewLikeLedger loads the persisted liked set.
func NewLikeLedger(store LikeStore) *LikeLedger {
	l := &LikeLedger{store: store, liked: make(map[int]bool)}
	for _, row := range store.Load() {
		l.liked[row] = true
	}
	return l
}

// Liked reports whether the given post is in the local liked set.
func (l *LikeLedger) Liked(rowIndex int) bool {
	return l.liked[rowIndex]
}

// Toggle flips local membership for the post, persists the new set and
// returns the counter direction to send to the server.
func (l *LikeLedger) Toggle(rowIndex int) LikeAction {
	if l.liked[rowIndex] {
		delete(l.liked, rowIndex)
		l.persist()
		return LikeDecrement
	}
	l.liked[rowIndex] = true
	l.persist()
	return LikeIncrement
}

// Rollback reverts a toggle whose remote update failed, restoring the
// pre-click membership and persisting it.
func (l *LikeLedger) Rollback(rowIndex int) {
	if l.liked[rowIndex] {
		delete(l.liked, rowIndex)
	} else {
		l.liked[rowIndex] = true
	}
	l.persist()
}

func (l *LikeLedger) persist() {
	rows := make([]int, 0, len(l.liked))
	for row := range l.liked {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	// Persistence failure is not fatal; the in-memory set stays correct
	// for this session.
	_ = l.store.Save(rows)
}
