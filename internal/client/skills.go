package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// ErrUnknownCategory is returned by CreateSkill when a category name cannot
// be resolved against the categories endpoint.
var ErrUnknownCategory = fmt.Errorf("client: unknown category")

// ListSkillsOptions are the supported listing filters. Zero values are
// omitted from the query.
type ListSkillsOptions struct {
	Category string
	Query    string
	MinPrice string
	MaxPrice string
	Sort     string
	Order    string
	Page     int
	Limit    int
}

func (o ListSkillsOptions) query() string {
	params := url.Values{}
	if o.Category != "" {
		params.Set("category", o.Category)
	}
	if o.Query != "" {
		params.Set("q", o.Query)
	}
	if o.MinPrice != "" {
		params.Set("minPrice", o.MinPrice)
	}
	if o.MaxPrice != "" {
		params.Set("maxPrice", o.MaxPrice)
	}
	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}
	if o.Order != "" {
		params.Set("order", o.Order)
	}
	if o.Page > 0 {
		params.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// ListSkills fetches one page of listings. The response shape is normalized
// regardless of which envelope generation the backend speaks.
func (c *Client) ListSkills(ctx context.Context, opts ListSkillsOptions) (*models.SkillList, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/skills"+opts.query(), &raw); err != nil {
		return nil, err
	}
	skills := make([]models.Skill, 0)
	pagination, err := decodeList(raw, &skills, "listings", "skills")
	if err != nil {
		return nil, err
	}
	return &models.SkillList{Skills: skills, Pagination: pagination}, nil
}

// GetSkill fetches the extended view of one listing by id or slug.
func (c *Client) GetSkill(ctx context.Context, idOrSlug string) (*models.SkillDetail, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/listings/"+url.PathEscape(idOrSlug), &raw); err != nil {
		return nil, err
	}
	var detail models.SkillDetail
	if err := json.Unmarshal(unwrapData(raw), &detail); err != nil {
		return nil, newTransportError("decode listing", err)
	}
	return &detail, nil
}

// BuySkill purchases a listing. The wallet must cover price plus fee;
// IsInsufficientBalance distinguishes that failure.
func (c *Client) BuySkill(ctx context.Context, skillID string, autoInstall bool) (*models.Purchase, error) {
	body := map[string]any{"skillId": skillID, "autoInstall": autoInstall}
	var raw json.RawMessage
	if err := c.post(ctx, "/skills/buy", body, &raw); err != nil {
		return nil, err
	}
	var purchase models.Purchase
	if err := json.Unmarshal(unwrapData(raw), &purchase); err != nil {
		return nil, newTransportError("decode purchase", err)
	}
	return &purchase, nil
}

// DownloadSkill returns the package URL and license for a purchased listing.
func (c *Client) DownloadSkill(ctx context.Context, id string) (*models.DownloadInfo, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/skills/"+url.PathEscape(id)+"/download", &raw); err != nil {
		return nil, err
	}
	var info models.DownloadInfo
	if err := json.Unmarshal(unwrapData(raw), &info); err != nil {
		return nil, newTransportError("decode download info", err)
	}
	return &info, nil
}

// FeaturedSkills fetches the curated featured listings.
func (c *Client) FeaturedSkills(ctx context.Context, limit int) ([]models.Skill, error) {
	return c.skillShelf(ctx, "featured", limit)
}

// FreeSkills fetches zero-price listings.
func (c *Client) FreeSkills(ctx context.Context, limit int) ([]models.Skill, error) {
	return c.skillShelf(ctx, "free", limit)
}

func (c *Client) skillShelf(ctx context.Context, shelf string, limit int) ([]models.Skill, error) {
	path := "/skills/" + shelf
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	skills := make([]models.Skill, 0)
	if _, err := decodeList(raw, &skills, "listings", "skills"); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill submits a new listing draft. When the draft names a category
// without an id, the id is resolved first via the categories endpoint using
// case-insensitive slug-or-name equality.
func (c *Client) CreateSkill(ctx context.Context, draft models.SkillDraft) (*models.SkillDetail, error) {
	if draft.CategoryID == "" && draft.Category != "" {
		categories, err := c.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		id := matchCategory(categories, draft.Category)
		if id == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, draft.Category)
		}
		draft.CategoryID = id
	}

	var raw json.RawMessage
	if err := c.post(ctx, "/skills", draft, &raw); err != nil {
		return nil, err
	}
	var detail models.SkillDetail
	if err := json.Unmarshal(unwrapData(raw), &detail); err != nil {
		return nil, newTransportError("decode created listing", err)
	}
	return &detail, nil
}

func matchCategory(categories []models.Category, name string) string {
	for _, cat := range categories {
		if strings.EqualFold(cat.Slug, name) || strings.EqualFold(cat.Name, name) {
			return cat.ID
		}
	}
	return ""
}

// ActivateLicense binds a license key to a device. Authentication rides on
// the license key itself via X-License-Key rather than the API key alone.
// An empty deviceID gets a generated one.
func (c *Client) ActivateLicense(ctx context.Context, licenseKey, deviceID, deviceInfo string) (*models.Activation, error) {
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	body := map[string]any{"deviceId": deviceID, "deviceInfo": deviceInfo}
	var raw json.RawMessage
	err := c.post(ctx, "/licenses/activate", body, &raw, withHeader("X-License-Key", licenseKey))
	if err != nil {
		return nil, err
	}
	var activation models.Activation
	if err := json.Unmarshal(unwrapData(raw), &activation); err != nil {
		return nil, newTransportError("decode activation", err)
	}
	return &activation, nil
}
