package app

import (
	"context"

	"hompy/domain"
)

// GuestbookService reads and appends guestbook/chatroom messages.
type GuestbookService interface {
	// Fetch returns all messages in server order.
	Fetch(ctx context.Context) ([]domain.Comment, error)

	// Add appends a message. Age and Location are sent when present.
	Add(ctx context.Context, c domain.Comment) error
}
