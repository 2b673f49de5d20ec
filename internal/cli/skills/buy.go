package skills

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

func newBuyCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		autoInstall bool
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "buy <id>",
		Short: "Purchase a skill",
		Long:  `Purchase a skill with wallet funds. Prompts for confirmation unless --yes is given or output is machine-readable.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			if !opts.Confirm(fmt.Sprintf("Buy skill %s?", args[0]), yes) {
				return fmt.Errorf("aborted")
			}
			purchase, err := c.BuySkill(cmd.Context(), args[0], autoInstall)
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(purchase)
			}
			p.Successf("Purchased %s for %s", args[0], formatPrice(purchase.Amount, purchase.Currency))
			if purchase.LicenseKey != "" {
				p.Field("License key", purchase.LicenseKey)
			}
			p.Field("Purchase ID", purchase.ID)
			p.Field("Status", purchase.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoInstall, "auto-install", false, "Ask the backend to install after purchase")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
