package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"hompy/domain"
)

// postService implements app.PostService against the Apps Script API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the sheet.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

func (s *postService) FetchAll(ctx context.Context) ([]domain.Post, error) {
	params := url.Values{}
	params.Set("tag", "all")

	data, err := s.client.Get(ctx, "getPosts", params)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}
	return posts, nil
}
