// Package skills implements the skills command group.
package skills

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

// NewCmd builds the skills command tree.
func NewCmd(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Browse, buy and publish marketplace skills",
	}
	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newBuyCmd(opts),
		newCreateCmd(opts),
		newDownloadCmd(opts),
		newFeaturedCmd(opts),
	)
	return cmd
}
