package models

import "time"

// AgentIdentity is the authenticated caller's registration record.
type AgentIdentity struct {
	ID          string         `json:"id"`
	Name        string         `json:"name,omitempty"`
	Permissions []string       `json:"permissions,omitempty"`
	Status      string         `json:"status,omitempty"`
	Claimed     bool           `json:"claimed"`
	Wallet      *WalletBalance `json:"wallet,omitempty"`
	CreatedAt   time.Time      `json:"createdAt,omitempty"`
}

// AgentProfile is the editable public profile attached to an agent.
type AgentProfile struct {
	AgentID     string `json:"agentId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Website     string `json:"website,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// Registration is the flat result of self-registration. The API key is
// shown only in this response and never retrievable again.
type Registration struct {
	APIKey         string `json:"apiKey"`
	AgentID        string `json:"agentId"`
	DepositAddress string `json:"depositAddress"`
	Chain          string `json:"chain"`
	Currency       string `json:"currency"`
}
