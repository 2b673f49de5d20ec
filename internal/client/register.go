package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// DefaultRegistrationURL is the fixed public endpoint for self-registration.
// It is the one operation that needs no API key.
const DefaultRegistrationURL = DefaultBaseURL + "/v1/agents/register"

// RegisterOptions configure the static registration call.
type RegisterOptions struct {
	// Name is the display name for the new agent.
	Name string

	// Platform identifies the runtime registering itself.
	Platform string

	// URL overrides the registration endpoint. Defaults to
	// DefaultRegistrationURL.
	URL string

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// registerWire tolerates both response generations the endpoint has served:
// a flat object already matching Registration, and a nested snake_case
// {agent, wallet} pair. Nested fields are mapped onto the flat contract
// explicitly; values are copied unchanged.
type registerWire struct {
	models.Registration

	Agent struct {
		ID     string `json:"id"`
		APIKey string `json:"api_key"`
	} `json:"agent"`
	Wallet struct {
		DepositAddress string `json:"deposit_address"`
		Chain          string `json:"chain"`
		Currency       string `json:"currency"`
	} `json:"wallet"`
}

func (w registerWire) flatten() *models.Registration {
	reg := w.Registration
	if reg.APIKey == "" {
		reg.APIKey = w.Agent.APIKey
	}
	if reg.AgentID == "" {
		reg.AgentID = w.Agent.ID
	}
	if reg.DepositAddress == "" {
		reg.DepositAddress = w.Wallet.DepositAddress
	}
	if reg.Chain == "" {
		reg.Chain = w.Wallet.Chain
	}
	if reg.Currency == "" {
		reg.Currency = w.Wallet.Currency
	}
	return &reg
}

// Register creates a new agent account and returns its issued credentials.
// The API key in the result is shown only once; callers must persist it.
func Register(ctx context.Context, opts RegisterOptions) (*models.Registration, error) {
	endpoint := opts.URL
	if endpoint == "" {
		endpoint = DefaultRegistrationURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	payload := map[string]any{}
	if strings.TrimSpace(opts.Name) != "" {
		payload["name"] = opts.Name
	}
	if strings.TrimSpace(opts.Platform) != "" {
		payload["platform"] = opts.Platform
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, newTransportError("marshal registration body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, newTransportError("create registration request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, newTransportError("POST "+endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError("read registration response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, normalizeBody(raw))
	}

	var wire registerWire
	if err := json.Unmarshal(unwrapData(raw), &wire); err != nil {
		return nil, newTransportError("decode registration response", err)
	}
	return wire.flatten(), nil
}
