package client

import (
	"context"
	"encoding/json"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// ListCategories fetches the full category taxonomy. The order the backend
// returns is preserved; no client-side sorting or deduplication.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/categories", &raw); err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0)
	if _, err := decodeList(raw, &categories, "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}
