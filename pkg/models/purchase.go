package models

import "time"

// Purchase is a completed transaction record. Immutable once created.
type Purchase struct {
	ID         string    `json:"id"`
	Skill      *Skill    `json:"skill,omitempty"`
	Amount     Amount    `json:"amount"`
	Fee        Amount    `json:"fee,omitempty"`
	Currency   string    `json:"currency,omitempty"`
	Status     string    `json:"status"`
	LicenseKey string    `json:"licenseKey,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// PurchaseList is the normalized result of the purchases listing call.
type PurchaseList struct {
	Purchases  []Purchase `json:"purchases"`
	Pagination Pagination `json:"pagination"`
}
