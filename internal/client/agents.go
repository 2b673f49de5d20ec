package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// Me returns the caller's own registration record.
//
// The backend currently validates this endpoint against a session token
// rather than the API key it documents, so authenticated callers may still
// see 401 here. That is a server defect; the client sends exactly what the
// contract says and surfaces the failure as-is.
func (c *Client) Me(ctx context.Context) (*models.AgentIdentity, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/agents/me", &raw); err != nil {
		return nil, err
	}
	var identity models.AgentIdentity
	if err := json.Unmarshal(unwrapData(raw), &identity); err != nil {
		return nil, newTransportError("decode agent identity", err)
	}
	return &identity, nil
}

// Status returns the caller's registration status.
func (c *Client) Status(ctx context.Context) (*models.AgentIdentity, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/agents/status", &raw); err != nil {
		return nil, err
	}
	var identity models.AgentIdentity
	if err := json.Unmarshal(unwrapData(raw), &identity); err != nil {
		return nil, newTransportError("decode agent status", err)
	}
	return &identity, nil
}

// GetProfile returns the caller's editable profile.
func (c *Client) GetProfile(ctx context.Context) (*models.AgentProfile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/agents/profile", &raw); err != nil {
		return nil, err
	}
	var profile models.AgentProfile
	if err := json.Unmarshal(unwrapData(raw), &profile); err != nil {
		return nil, newTransportError("decode agent profile", err)
	}
	return &profile, nil
}

// UpdateProfile replaces the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, profile models.AgentProfile) (*models.AgentProfile, error) {
	var raw json.RawMessage
	if err := c.put(ctx, "/v1/agents/profile", profile, &raw); err != nil {
		return nil, err
	}
	var updated models.AgentProfile
	if err := json.Unmarshal(unwrapData(raw), &updated); err != nil {
		return nil, newTransportError("decode agent profile", err)
	}
	return &updated, nil
}

// GetPublicProfile returns another agent's public profile by id.
func (c *Client) GetPublicProfile(ctx context.Context, agentID string) (*models.AgentProfile, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/agents/"+url.PathEscape(agentID)+"/profile", &raw); err != nil {
		return nil, err
	}
	var profile models.AgentProfile
	if err := json.Unmarshal(unwrapData(raw), &profile); err != nil {
		return nil, newTransportError("decode public profile", err)
	}
	return &profile, nil
}
