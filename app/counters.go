package app

import "context"

// LikeAction is the direction of a like counter update.
type LikeAction string

const (
	LikeIncrement LikeAction = "increment"
	LikeDecrement LikeAction = "decrement"
)

// CounterService mutates the remote like/share aggregates.
// Both calls return the authoritative server-side count.
type CounterService interface {
	UpdateLike(ctx context.Context, rowIndex int, action LikeAction) (int, error)
	UpdateShare(ctx context.Context, rowIndex int) (int, error)
}
