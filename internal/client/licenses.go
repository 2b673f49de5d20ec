package client

import (
	"context"
	"encoding/json"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// ValidateLicense checks a license key server-side. An invalid key is not
// an error; the verdict comes back in the result.
func (c *Client) ValidateLicense(ctx context.Context, key string) (*models.LicenseValidation, error) {
	body := map[string]any{"licenseKey": key}
	var raw json.RawMessage
	if err := c.post(ctx, "/licenses/validate", body, &raw); err != nil {
		return nil, err
	}
	var validation models.LicenseValidation
	if err := json.Unmarshal(unwrapData(raw), &validation); err != nil {
		return nil, newTransportError("decode license validation", err)
	}
	return &validation, nil
}
