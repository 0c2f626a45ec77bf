package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"hompy/domain"
)

// guestbookService implements app.GuestbookService against the Apps
// Script API. The guestbook and the chatroom share the same comment
// sheet; chatroom messages carry the extra age/location fields.
type guestbookService struct {
	client *Client
}

// NewGuestbookService creates a GuestbookService backed by the sheet.
func NewGuestbookService(client *Client) *guestbookService {
	return &guestbookService{client: client}
}

func (s *guestbookService) Fetch(ctx context.Context) ([]domain.Comment, error) {
	data, err := s.client.Get(ctx, "getComments", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}

	var comments []domain.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}
	return comments, nil
}

func (s *guestbookService) Add(ctx context.Context, c domain.Comment) error {
	form := url.Values{}
	form.Set("username", c.Username)
	form.Set("message", c.Message)
	if c.Age != "" {
		form.Set("age", c.Age)
	}
	if c.Location != "" {
		form.Set("location", c.Location)
	}

	if _, err := s.client.PostForm(ctx, "addComment", form); err != nil {
		return fmt.Errorf("adding comment: %w", err)
	}
	return nil
}
