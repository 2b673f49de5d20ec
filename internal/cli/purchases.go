package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewPurchasesCmd builds the purchases command group.
func NewPurchasesCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchases",
		Short: "Inspect purchase history",
	}

	var (
		page  int
		limit int
	)

	list := &cobra.Command{
		Use:   "list",
		Short: "List past purchases",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := c.ListPurchases(cmd.Context(), page, limit)
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(result)
			}
			if len(result.Purchases) == 0 {
				p.Println("No purchases yet")
				return nil
			}
			t := printer.NewTable(p.Out())
			t.SetHeaders("ID", "Skill", "Amount", "Status", "License")
			for _, purchase := range result.Purchases {
				skillTitle := "<unknown>"
				if purchase.Skill != nil {
					skillTitle = purchase.Skill.Title
				}
				t.AddRow(
					printer.Truncate(purchase.ID, 24),
					printer.Truncate(skillTitle, 36),
					purchase.Amount,
					purchase.Status,
					printer.OrDefault(printer.Truncate(purchase.LicenseKey, 20), "<none>"),
				)
			}
			return t.Render()
		},
	}

	list.Flags().IntVarP(&page, "page", "p", 0, "Page number")
	list.Flags().IntVarP(&limit, "limit", "l", 0, "Results per page")

	cmd.AddCommand(list)
	return cmd
}
