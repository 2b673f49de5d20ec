package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// ListPurchases fetches one page of the caller's purchase history.
func (c *Client) ListPurchases(ctx context.Context, page, limit int) (*models.PurchaseList, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/purchases"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	purchases := make([]models.Purchase, 0)
	pagination, err := decodeList(raw, &purchases, "purchases")
	if err != nil {
		return nil, err
	}
	return &models.PurchaseList{Purchases: purchases, Pagination: pagination}, nil
}
