package app

import (
	"context"

	"hompy/domain"
)

// PostService fetches the full post list from the remote sheet.
type PostService interface {
	// FetchAll returns every post. The client never fetches partial
	// pages; pagination happens locally.
	FetchAll(ctx context.Context) ([]domain.Post, error)
}
