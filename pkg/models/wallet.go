package models

import "time"

// WalletBalance is a point-in-time snapshot of account funds.
type WalletBalance struct {
	Balance        Amount `json:"balance"`
	Currency       string `json:"currency"`
	Pending        Amount `json:"pending,omitempty"`
	Locked         Amount `json:"locked,omitempty"`
	Available      Amount `json:"available,omitempty"`
	DepositAddress string `json:"depositAddress,omitempty"`
}

// DepositInfo carries funding instructions for topping up the wallet.
type DepositInfo struct {
	Address  string `json:"address"`
	Chain    string `json:"chain"`
	Currency string `json:"currency"`
	QRCode   string `json:"qrCode,omitempty"`
	Balance  Amount `json:"balance,omitempty"`
}

// Withdrawal is a payout record.
type Withdrawal struct {
	ID        string    `json:"id"`
	Amount    Amount    `json:"amount"`
	Fee       Amount    `json:"fee,omitempty"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	TxHash    string    `json:"txHash,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// DonationStats summarizes donations received by the caller.
type DonationStats struct {
	TotalReceived Amount `json:"totalReceived"`
	DonationCount int    `json:"donationCount"`
	Currency      string `json:"currency,omitempty"`
}

// Donation is the result of sending a donation to another agent.
type Donation struct {
	ID        string `json:"id"`
	Amount    Amount `json:"amount"`
	Recipient string `json:"recipient"`
	Status    string `json:"status,omitempty"`
}
