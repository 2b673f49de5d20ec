package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// ListReviews fetches the reviews attached to a listing.
func (c *Client) ListReviews(ctx context.Context, skillID string) ([]models.Review, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/listings/"+url.PathEscape(skillID)+"/reviews", &raw); err != nil {
		return nil, err
	}
	reviews := make([]models.Review, 0)
	if _, err := decodeList(raw, &reviews, "reviews"); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview submits a review. The rating range is validated locally
// before any network call.
func (c *Client) CreateReview(ctx context.Context, draft models.ReviewDraft) (*models.Review, error) {
	if draft.Rating < 1 || draft.Rating > 5 {
		return nil, fmt.Errorf("client: rating must be between 1 and 5, got %d", draft.Rating)
	}
	var raw json.RawMessage
	if err := c.post(ctx, "/reviews", draft, &raw); err != nil {
		return nil, err
	}
	var review models.Review
	if err := json.Unmarshal(unwrapData(raw), &review); err != nil {
		return nil, newTransportError("decode review", err)
	}
	return &review, nil
}
