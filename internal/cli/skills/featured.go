package skills

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

func newFeaturedCmd(opts *cmdutil.Options) *cobra.Command {
	var (
		limit int
		free  bool
	)

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show curated featured skills",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.Client()
			if err != nil {
				return err
			}
			fetch := c.FeaturedSkills
			if free {
				fetch = c.FreeSkills
			}
			skills, err := fetch(cmd.Context(), limit)
			if err != nil {
				return err
			}

			p := opts.Printer()
			if p.Machine() {
				return p.Result(skills)
			}
			if len(skills) == 0 {
				p.Println("No skills found")
				return nil
			}
			renderSkillsTable(p, skills)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results")
	cmd.Flags().BoolVar(&free, "free", false, "Show free skills instead")

	return cmd
}
