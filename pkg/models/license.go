package models

import "time"

// License describes an issued entitlement for a listing.
type License struct {
	Key       string    `json:"key,omitempty"`
	Type      string    `json:"type,omitempty"`
	Status    string    `json:"status,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
	Skill     *Skill    `json:"skill,omitempty"`
}

// LicenseValidation is the server's verdict on a license key.
type LicenseValidation struct {
	Valid   bool     `json:"valid"`
	License *License `json:"license,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Activation is the result of binding a license to a device.
type Activation struct {
	Activated       bool   `json:"activated"`
	DeviceID        string `json:"deviceId,omitempty"`
	ActivationsUsed int    `json:"activationsUsed,omitempty"`
	ActivationsMax  int    `json:"activationsMax,omitempty"`
}
