// Package reviews implements the reviews command group.
package reviews

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/pkg/models"
	"github.com/agentmart-dev/agentmart/pkg/printer"
)

// NewCmd builds the reviews command tree.
func NewCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write listing reviews",
	}
	cmd.AddCommand(
		newListCmd(opts),
		newCreateCmd(opts),
	)
	return cmd
}

func newListCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list <skill-id>",
		Short: "List reviews for a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			reviews, err := c.ListReviews(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(reviews)
			}
			if len(reviews) == 0 {
				p.Println("No reviews yet")
				return nil
			}
			t := printer.NewTable(p.Out())
			t.SetHeaders("Rating", "Title", "Author", "Helpful")
			for _, r := range reviews {
				t.AddRow(
					stars(r.Rating),
					printer.Truncate(printer.OrDefault(r.Title, "<untitled>"), 40),
					printer.OrDefault(r.Author, "<anonymous>"),
					r.Helpful,
				)
			}
			return t.Render()
		},
	}
}

func newCreateCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		rating int
		title  string
		body   string
	)

	cmd := &cobra.Command{
		Use:   "create <skill-id>",
		Short: "Review a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			review, err := c.CreateReview(cmd.Context(), models.ReviewDraft{
				SkillID: args[0],
				Rating:  rating,
				Title:   title,
				Body:    body,
			})
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(review)
			}
			p.Successf("Review submitted: %s %s", stars(review.Rating), review.Title)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating from 1 to 5")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Review title")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Review body")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			out += "★"
		} else {
			out += "☆"
		}
	}
	return fmt.Sprintf("%s (%d)", out, rating)
}
