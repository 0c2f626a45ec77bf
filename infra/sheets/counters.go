package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"hompy/app"
)

// counterService implements app.CounterService against the Apps Script
// API.
type counterService struct {
	client *Client
}

// NewCounterService creates a CounterService backed by the sheet.
func NewCounterService(client *Client) *counterService {
	return &counterService{client: client}
}

func (s *counterService) UpdateLike(ctx context.Context, rowIndex int, action app.LikeAction) (int, error) {
	form := url.Values{}
	form.Set("rowIndex", strconv.Itoa(rowIndex))
	form.Set("likeAction", string(action))

	data, err := s.client.PostForm(ctx, "updateLike", form)
	if err != nil {
		return 0, fmt.Errorf("updating like: %w", err)
	}

	var resp struct {
		Success  bool `json:"success"`
		NewLikes int  `json:"newLikes"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("parsing like response: %w", err)
	}
	return resp.NewLikes, nil
}

func (s *counterService) UpdateShare(ctx context.Context, rowIndex int) (int, error) {
	form := url.Values{}
	form.Set("rowIndex", strconv.Itoa(rowIndex))

	data, err := s.client.PostForm(ctx, "updateShare", form)
	if err != nil {
		return 0, fmt.Errorf("updating share: %w", err)
	}

	var resp struct {
		Success   bool `json:"success"`
		NewShares int  `json:"newShares"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return 0, fmt.Errorf("parsing share response: %w", err)
	}
	return resp.NewShares, nil
}
