package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// Soul operations straddle two API path generations: reads go through the
// legacy /souls prefix while buy and create landed on /v1/souls. The mapping
// is preserved per operation; unifying it without backend confirmation would
// silently break calls.

// ListSoulsOptions are the supported soul listing filters.
type ListSoulsOptions struct {
	Query string
	Page  int
	Limit int
}

// ListSouls fetches one page of souls via the legacy prefix.
func (c *Client) ListSouls(ctx context.Context, opts ListSoulsOptions) (*models.SoulList, error) {
	params := url.Values{}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	path := "/souls"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	souls := make([]models.Soul, 0)
	pagination, err := decodeList(raw, &souls, "souls")
	if err != nil {
		return nil, err
	}
	return &models.SoulList{Souls: souls, Pagination: pagination}, nil
}

// GetSoul fetches one soul by id or slug, including its full content.
func (c *Client) GetSoul(ctx context.Context, idOrSlug string) (*models.Soul, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/souls/"+url.PathEscape(idOrSlug), &raw); err != nil {
		return nil, err
	}
	var soul models.Soul
	if err := json.Unmarshal(unwrapData(raw), &soul); err != nil {
		return nil, newTransportError("decode soul", err)
	}
	return &soul, nil
}

// BuySoul purchases a soul via the v1 prefix.
func (c *Client) BuySoul(ctx context.Context, soulID string) (*models.Purchase, error) {
	body := map[string]any{"soulId": soulID}
	var raw json.RawMessage
	if err := c.post(ctx, "/v1/souls/buy", body, &raw); err != nil {
		return nil, err
	}
	var purchase models.Purchase
	if err := json.Unmarshal(unwrapData(raw), &purchase); err != nil {
		return nil, newTransportError("decode purchase", err)
	}
	return &purchase, nil
}

// CreateSoul submits a new soul via the v1 prefix.
func (c *Client) CreateSoul(ctx context.Context, draft models.SoulDraft) (*models.Soul, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/v1/souls", draft, &raw); err != nil {
		return nil, err
	}
	var soul models.Soul
	if err := json.Unmarshal(unwrapData(raw), &soul); err != nil {
		return nil, newTransportError("decode created soul", err)
	}
	return &soul, nil
}
