package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewCategoriesCmd builds the categories command. The backend's ordering is
// passed through untouched.
func NewCategoriesCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the marketplace category taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			categories, err := c.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(categories)
			}
			if len(categories) == 0 {
				p.Println("No categories")
				return nil
			}
			t := printer.NewTable(p.Out())
			t.SetHeaders("Slug", "Name", "Listings")
			for _, cat := range categories {
				t.AddRow(cat.Slug, cat.Name, cat.Count)
			}
			return t.Render()
		},
	}
}
