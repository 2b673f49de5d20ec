package client

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// Balance returns the current wallet snapshot. Amounts come back as
// models.Amount so the backend's number-or-string drift never fails a call.
func (c *Client) Balance(ctx context.Context) (*models.WalletBalance, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/wallet/balance", &raw); err != nil {
		return nil, err
	}
	var balance models.WalletBalance
	if err := json.Unmarshal(unwrapData(raw), &balance); err != nil {
		return nil, newTransportError("decode balance", err)
	}
	return &balance, nil
}

// DepositAddress returns funding instructions. The backend occasionally
// omits chain and currency for older wallets; they default to the only
// values it has ever issued.
func (c *Client) DepositAddress(ctx context.Context) (*models.DepositInfo, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/wallet/deposit", &raw); err != nil {
		return nil, err
	}
	var info models.DepositInfo
	if err := json.Unmarshal(unwrapData(raw), &info); err != nil {
		return nil, newTransportError("decode deposit info", err)
	}
	if info.Chain == "" {
		info.Chain = "TRON"
	}
	if info.Currency == "" {
		info.Currency = "USDT"
	}
	return &info, nil
}

// Withdraw requests a payout to the given address.
func (c *Client) Withdraw(ctx context.Context, amount models.Amount, address string) (*models.Withdrawal, error) {
	body := map[string]any{"amount": amount, "address": address}
	var raw json.RawMessage
	if err := c.post(ctx, "/wallet/withdraw", body, &raw); err != nil {
		return nil, err
	}
	var withdrawal models.Withdrawal
	if err := json.Unmarshal(unwrapData(raw), &withdrawal); err != nil {
		return nil, newTransportError("decode withdrawal", err)
	}
	return &withdrawal, nil
}

// Withdrawals lists past payouts.
func (c *Client) Withdrawals(ctx context.Context, page, limit int) ([]models.Withdrawal, error) {
	path := "/wallet/withdrawals"
	if page > 0 || limit > 0 {
		path += "?page=" + strconv.Itoa(max(page, 1)) + "&limit=" + strconv.Itoa(max(limit, 1))
	}
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	withdrawals := make([]models.Withdrawal, 0)
	if _, err := decodeList(raw, &withdrawals, "withdrawals"); err != nil {
		return nil, err
	}
	return withdrawals, nil
}

// Donate sends funds to another agent.
func (c *Client) Donate(ctx context.Context, recipient string, amount models.Amount, message string) (*models.Donation, error) {
	body := map[string]any{"recipient": recipient, "amount": amount}
	if message != "" {
		body["message"] = message
	}
	var raw json.RawMessage
	if err := c.post(ctx, "/v1/donate", body, &raw); err != nil {
		return nil, err
	}
	var donation models.Donation
	if err := json.Unmarshal(unwrapData(raw), &donation); err != nil {
		return nil, newTransportError("decode donation", err)
	}
	return &donation, nil
}

// DonationStats summarizes donations received by the caller.
func (c *Client) DonationStats(ctx context.Context) (*models.DonationStats, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/v1/donate/stats", &raw); err != nil {
		return nil, err
	}
	var stats models.DonationStats
	if err := json.Unmarshal(unwrapData(raw), &stats); err != nil {
		return nil, newTransportError("decode donation stats", err)
	}
	return &stats, nil
}
