package skills

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/client"
	"github.com/agentmart-dev/agentmart/pkg/models"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

func newListCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		category string
		query    string
		minPrice string
		maxPrice string
		sortBy   string
		order    string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List marketplace skills",
		Long:  `List skills, optionally filtered by category, search query and price range.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = opts.Config.SearchLimit()
			}
			result, err := c.ListSkills(cmd.Context(), client.ListSkillsOptions{
				Category: category,
				Query:    query,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				Sort:     sortBy,
				Order:    order,
				Page:     page,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(result)
			}
			if len(result.Skills) == 0 {
				p.Println("No skills found")
				return nil
			}
			renderSkillsTable(p, result.Skills)
			pg := result.Pagination
			if pg.TotalPages > 1 {
				p.Println(fmt.Sprintf("\nPage %d of %d (%d total)", pg.Page, pg.TotalPages, pg.Total))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category slug or name")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search query")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "Minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "Maximum price")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort field (price, rating, created)")
	cmd.Flags().StringVar(&order, "order", "", "Sort order (asc, desc)")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Results per page")

	return cmd
}

func renderSkillsTable(p *printer.Printer, skills []models.Skill) {
	t := printer.NewTable(p.Out())
	t.SetHeaders("ID", "Title", "Price", "Category", "Rating")
	for _, s := range skills {
		t.AddRow(
			printer.Truncate(printer.OrDefault(s.ID, s.Slug), 24),
			printer.Truncate(s.Title, 40),
			formatPrice(s.Price, s.Currency),
			printer.OrDefault(s.Category, "<none>"),
			fmt.Sprintf("%.1f", s.Rating),
		)
	}
	if err := t.Render(); err != nil {
		p.Errorf("failed to render table: %v", err)
	}
}

func formatPrice(price models.Amount, currency string) string {
	if price == "" || price == "0" {
		return "free"
	}
	if currency == "" {
		return price.String()
	}
	return price.String() + " " + currency
}
