// Package cli holds the top-level single commands of the amctl tree.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentmart-dev/agentmart/internal/cli/cmdutil"
	"github.com/agentmart-dev/agentmart/internal/cli/config"
)

// NewAuthCmd builds the auth command, which persists an API key to the
// config file.
func NewAuthCmd(opts *cmdutil.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "auth <api-key>",
		Short: "Save an API key for future invocations",
		Long:  `Save an API key to ~/.agentmart/config.json. The AGENTMART_API_KEY environment variable still takes precedence when set.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.TrimSpace(args[0])
			if key == "" {
				return cmdutil.ErrNotAuthenticated
			}

			cfg := opts.Config
			if cfg == nil {
				cfg = &config.Config{}
			}
			cfg.APIKey = key
			if err := config.Save(opts.ConfigPath, cfg); err != nil {
				return err
			}
			opts.APIKey = key

			p := opts.Printer()
			if p.Machine() {
				return p.Result(map[string]any{"saved": true})
			}
			p.Successf("API key saved")
			return nil
		},
	}
}
