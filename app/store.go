package app

import "hompy/domain"

// PostCache persists the full post list with its fetch timestamp.
// Load reports ok=false for a missing, corrupt or otherwise unusable
// entry; corrupt entries are cleared on read.
type PostCache interface {
	Load() (domain.CacheEnvelope, bool)
	Save(posts []domain.Post) error
	Clear()
}

// LikeStore persists the set of rowIndex values this user has liked.
// A failed load reads as the empty set.
type LikeStore interface {
	Load() []int
	Save(rows []int) error
}

// IdentityStore persists the user's chat identity and the guestbook
// display name.
type IdentityStore interface {
	LoadIdentity() (domain.Identity, bool)
	SaveIdentity(id domain.Identity) error
	ClearIdentity()

	LoadName() string
	SaveName(name string) error
}
