package skills

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

func newGetCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id-or-slug>",
		Short: "Show one skill in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			detail, err := c.GetSkill(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(detail)
			}
			p.Field("Title", detail.Title)
			p.Field("ID", detail.ID)
			p.Field("Slug", detail.Slug)
			p.Field("Price", formatPrice(detail.Price, detail.Currency))
			p.Field("Category", detail.Category)
			p.Field("Creator", detail.Creator)
			p.Field("Rating", fmt.Sprintf("%.1f (%d reviews)", detail.Rating, detail.ReviewCount))
			if detail.Version != "" {
				p.Field("Version", detail.Version)
			}
			if len(detail.Tags) > 0 {
				p.Field("Tags", strings.Join(detail.Tags, ", "))
			}
			if detail.DocumentationURL != "" {
				p.Field("Docs", detail.DocumentationURL)
			}
			if detail.Description != "" {
				p.Println()
				p.Println(p.Wrap(detail.Description))
			}
			return nil
		},
	}
}
