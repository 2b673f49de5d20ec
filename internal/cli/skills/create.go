package skills

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/client"
	"github.com/agentmart-dev/agentmart/pkg/models"
)

func newCreateCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		title       string
		description string
		price       string
		category    string
		categoryID  string
		tags        []string
		packagePath string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new skill listing",
		Long: `Publish a new skill listing. A category may be given by human name or slug;
the id is resolved against the categories endpoint before submitting. With
--package the archive is uploaded first and linked to the listing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			p := opts.Printer()

			draft := models.SkillDraft{
				Title:       title,
				Description: description,
				Price:       models.Amount(price),
				Category:    category,
				CategoryID:  categoryID,
				Tags:        tags,
			}
			if packagePath != "" {
				upload, err := c.UploadPackage(cmd.Context(), packagePath, client.UploadPackageOptions{
					ShowProgress: !p.Machine(),
				})
				if err != nil {
					return err
				}
				draft.PackageURL = upload.PackageURL
			}

			detail, err := c.CreateSkill(cmd.Context(), draft)
			if err != nil {
				return err
			}
			if p.Machine() {
				return p.Result(detail)
			}
			p.Successf("Created skill %s", detail.Title)
			p.Field("ID", detail.ID)
			p.Field("Slug", detail.Slug)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Listing title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Listing description")
	cmd.Flags().StringVar(&price, "price", "0", "Price in wallet currency")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category name or slug")
	cmd.Flags().StringVar(&categoryID, "category-id", "", "Category id (skips name resolution)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&packagePath, "package", "", "Path to a package archive to upload")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
