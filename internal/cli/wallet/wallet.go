// Package wallet implements the wallet command group.
package wallet

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/models"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewCmd builds the wallet command tree.
func NewCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Inspect and move wallet funds",
	}
	cmd.AddCommand(
		newBalanceCmd(opts),
		newDepositAddressCmd(opts),
		newWithdrawCmd(opts),
		newWithdrawalsCmd(opts),
		newDonateCmd(opts),
	)
	return cmd
}

func newBalanceCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the current wallet balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			balance, err := c.Balance(cmd.Context())
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(balance)
			}
			p.Field("Balance", fmt.Sprintf("%s %s", balance.Balance, balance.Currency))
			if balance.Pending != "" {
				p.Field("Pending", balance.Pending.String())
			}
			if balance.Locked != "" {
				p.Field("Locked", balance.Locked.String())
			}
			if balance.Available != "" {
				p.Field("Available", balance.Available.String())
			}
			return nil
		},
	}
}

func newDepositAddressCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit-address",
		Short: "Show funding instructions for topping up",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			info, err := c.DepositAddress(cmd.Context())
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(info)
			}
			p.Field("Address", info.Address)
			p.Field("Chain", info.Chain)
			p.Field("Currency", info.Currency)
			return nil
		},
	}
}

func newWithdrawCmd(opts *cmdutil.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "withdraw <amount> <address>",
		Short: "Request a payout to an external address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			if !opts.Confirm(fmt.Sprintf("Withdraw %s to %s?", args[0], args[1]), yes) {
				return fmt.Errorf("aborted")
			}
			withdrawal, err := c.Withdraw(cmd.Context(), models.Amount(args[0]), args[1])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(withdrawal)
			}
			p.Successf("Withdrawal %s submitted", withdrawal.ID)
			p.Field("Amount", withdrawal.Amount.String())
			p.Field("Status", withdrawal.Status)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newWithdrawalsCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "withdrawals",
		Short: "List past payouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			withdrawals, err := c.Withdrawals(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(withdrawals)
			}
			if len(withdrawals) == 0 {
				p.Println("No withdrawals")
				return nil
			}
			t := printer.NewTable(p.Out())
			t.SetHeaders("ID", "Amount", "Address", "Status", "Tx")
			for _, w := range withdrawals {
				t.AddRow(
					printer.Truncate(w.ID, 24),
					w.Amount,
					printer.Truncate(w.Address, 24),
					w.Status,
					printer.OrDefault(printer.Truncate(w.TxHash, 16), "<pending>"),
				)
			}
			return t.Render()
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Results per page")

	return cmd
}

func newDonateCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		message string
		yes     bool
		stats   bool
	)

	cmd := &cobra.Command{
		Use:   "donate [recipient amount]",
		Short: "Donate to another agent, or show donations received",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			p := opts.Printer()

			if stats || len(args) == 0 {
				received, err := c.DonationStats(cmd.Context())
				if err != nil {
					return err
				}
				if p.Machine() {
					return p.Result(received)
				}
				p.Field("Total received", received.TotalReceived.String())
				p.Field("Donations", fmt.Sprintf("%d", received.DonationCount))
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("donate needs a recipient and an amount")
			}
			if !opts.Confirm(fmt.Sprintf("Donate %s to %s?", args[1], args[0]), yes) {
				return fmt.Errorf("aborted")
			}
			donation, err := c.Donate(cmd.Context(), args[0], models.Amount(args[1]), message)
			if err != nil {
				return err
			}
			if p.Machine() {
				return p.Result(donation)
			}
			p.Successf("Donated %s to %s", donation.Amount, donation.Recipient)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Optional message for the recipient")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&stats, "stats", false, "Show donations received instead of sending")

	return cmd
}
