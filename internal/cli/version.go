package cli

import (
	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewVersionCmd builds the version command.
func NewVersionCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the amctl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := opts.Printer()
			if p.Machine() {
				return p.Result(map[string]string{"version": Version})
			}
			p.Println("amctl", Version)
			return nil
		},
	}
}
