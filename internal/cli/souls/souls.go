// Package souls implements the souls command group.
package souls

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/client"
	"github.com/agentmart-dev/agentmart/pkg/models"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewCmd builds the souls command tree.
func NewCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "souls",
		Short: "Browse, buy and publish soul documents",
	}
	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newBuyCmd(opts),
		newCreateCmd(opts),
	)
	return cmd
}

func newListCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		query string
		page  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List soul documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			result, err := c.ListSouls(cmd.Context(), client.ListSoulsOptions{
				Query: query,
				Page:  page,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(result)
			}
			if len(result.Souls) == 0 {
				p.Println("No souls found")
				return nil
			}
			t := printer.NewTable(p.Out())
			t.SetHeaders("ID", "Name", "Price", "Creator")
			for _, s := range result.Souls {
				t.AddRow(
					printer.Truncate(printer.OrDefault(s.ID, s.Slug), 24),
					printer.Truncate(s.Name, 40),
					printer.OrDefault(s.Price.String(), "free"),
					printer.OrDefault(s.Creator, "<none>"),
				)
			}
			return t.Render()
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Search query")
	cmd.Flags().IntVarP(&page, "page", "p", 0, "Page number")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Results per page")

	return cmd
}

func newGetCmd(opts *cmdutil.Options) *cobra.Command {
	var contentOnly bool

	cmd := &cobra.Command{
		Use:   "get <id-or-slug>",
		Short: "Show one soul, including its full content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			soul, err := c.GetSoul(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(soul)
			}
			if contentOnly {
				p.Println(soul.Content)
				return nil
			}
			p.Field("Name", soul.Name)
			p.Field("ID", soul.ID)
			p.Field("Slug", soul.Slug)
			p.Field("Price", printer.OrDefault(soul.Price.String(), "free"))
			if soul.Description != "" {
				p.Println()
				p.Println(p.Wrap(soul.Description))
			}
			if soul.Content != "" {
				p.Println()
				p.Println(soul.Content)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&contentOnly, "content", false, "Print only the document body")

	return cmd
}

func newBuyCmd(opts *cmdutil.Options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "buy <id>",
		Short: "Purchase a soul",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			if !opts.Confirm(fmt.Sprintf("Buy soul %s?", args[0]), yes) {
				return fmt.Errorf("aborted")
			}
			purchase, err := c.BuySoul(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(purchase)
			}
			p.Successf("Purchased soul %s", args[0])
			p.Field("Purchase ID", purchase.ID)
			p.Field("Status", purchase.Status)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newCreateCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		name        string
		description string
		price       string
		tags        []string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new soul document",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read soul document: %w", err)
			}
			soul, err := c.CreateSoul(cmd.Context(), models.SoulDraft{
				Name:        name,
				Description: description,
				Content:     string(content),
				Price:       models.Amount(price),
				Tags:        tags,
			})
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(soul)
			}
			p.Successf("Created soul %s", soul.Name)
			p.Field("ID", soul.ID)
			p.Field("Slug", soul.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Soul name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Short description")
	cmd.Flags().StringVar(&price, "price", "", "Price in wallet currency")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document body")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
